package textstats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/registry"
)

func TestTextStats(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in         string
		upper      int
		chars      int
		wordLength float64
	}{
		{in: "", upper: 0, chars: 0, wordLength: 0},
		{in: "   ", upper: 0, chars: 3, wordLength: 0},
		{in: "Ciao MONDO! 😀😀", upper: 6, chars: 14, wordLength: 4},
		{in: "così è", upper: 0, chars: 6, wordLength: 2.5},
		{in: "ÀÈ\tok\nsì", upper: 2, chars: 8, wordLength: 2},
		{in: "a bb ccc", upper: 0, chars: 8, wordLength: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.upper, CountUppercase(tc.in))
			assert.Equal(t, tc.chars, CountChars(tc.in))
			assert.Equal(t, tc.wordLength, MeanWordLength(tc.in))
		})
	}
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	ctx := context.Background()
	row := feature.NewRow(0, "Ciao MONDO!", nil)

	for name, want := range map[feature.Name]any{
		feature.UppercaseCount: 6,
		feature.CharCount:      11,
		feature.WordLength:     5.0,
	} {
		f, ok := r.Lookup(name)
		require.True(t, ok, name)
		got, err := f.Fn(ctx, row, nil)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
		assert.Zero(t, f.Needs)
	}
}
