package nlp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "only spaces", text: "   ", want: []string{"   "}},
		{name: "words and punctuation", text: "Ciao MONDO!", want: []string{"Ciao", "MONDO", "!"}},
		{name: "emoji are separate tokens", text: "ok 😀😀", want: []string{"ok", "😀", "😀"}},
		{name: "elision keeps apostrophe", text: "l'amico", want: []string{"l'", "amico"}},
		{name: "decimal number", text: "costa 3,50 euro", want: []string{"costa", "3,50", "euro"}},
		{name: "ellipsis", text: "boh...", want: []string{"boh", "..."}},
		{name: "double space becomes a token", text: "a  b", want: []string{"a", " ", "b"}},
		{name: "newline becomes a token", text: "a\nb", want: []string{"a", "\n", "b"}},
		{name: "hyphenated word", text: "e-mail", want: []string{"e-mail"}},
		{name: "zwj sequence", text: "👩‍💻", want: []string{"👩‍💻"}},
		{name: "skin tone modifier", text: "👍🏽", want: []string{"👍🏽"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tc.want, Tokenize(tc.text)); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.text, diff)
			}
		})
	}
}
