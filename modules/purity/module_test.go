package purity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/nlp"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

func doc(tokens ...nlp.Token) *nlp.Doc {
	return &nlp.Doc{Tokens: tokens}
}

func alpha(text string) nlp.Token {
	return nlp.Token{Text: text, POS: nlp.TagNOUN, IsAlpha: true}
}

func TestVocabularyCount(t *testing.T) {
	t.Parallel()
	vocab := nlp.NewVocabulary("ciao", "mondo", "bello")

	testCases := []struct {
		name string
		doc  *nlp.Doc
		want float64
	}{
		{name: "nil doc", doc: nil, want: 0},
		{name: "no tokens", doc: doc(), want: 0},
		{name: "no alphabetic tokens", doc: doc(nlp.Token{Text: "123", POS: nlp.TagNUM}, nlp.Token{Text: "!", POS: nlp.TagPUNCT}), want: 0},
		{name: "all known, case-insensitive", doc: doc(alpha("Ciao"), alpha("MONDO")), want: 1},
		{name: "one of three", doc: doc(alpha("ciao"), alpha("weekend"), alpha("meeting")), want: 0.33},
		{name: "non-alpha tokens are ignored", doc: doc(alpha("bello"), nlp.Token{Text: "!!"}, alpha("party")), want: 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, VocabularyCount(tc.doc, vocab))
		})
	}
}

func TestOnItalianness(t *testing.T) {
	model, err := nlp.NewLexiconModel(map[string]string{"ciao": nlp.TagINTJ, "mondo": nlp.TagNOUN})
	require.NoError(t, err)
	res := &resources.Set{Italian: model, ItalianVocabulary: nlp.NewVocabulary("ciao", "mondo")}

	got, err := OnItalianness(context.Background(), feature.NewRow(0, "ciao mondo meeting!", model), res)
	require.NoError(t, err)
	assert.Equal(t, 0.67, got)
}

func TestOnEnglishness(t *testing.T) {
	model, err := nlp.NewLexiconModel(map[string]string{"hello": nlp.TagINTJ})
	require.NoError(t, err)
	res := &resources.Set{English: model, EnglishVocabulary: nlp.NewVocabulary("hello", "world")}

	got, err := OnEnglishness(context.Background(), feature.NewRow(0, "Hello world, ciao", nil), res)
	require.NoError(t, err)
	assert.Equal(t, 0.67, got)

	_, err = OnEnglishness(context.Background(), feature.NewRow(0, "hello", nil), &resources.Set{})
	require.Error(t, err)
}

func TestRegister_Needs(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	caps := r.Capabilities([]feature.Name{feature.Englishness})
	assert.False(t, caps.Has(resources.ItalianModel))
	assert.False(t, caps.Has(resources.ItalianVocabulary))
	assert.True(t, caps.Has(resources.EnglishModel|resources.EnglishVocabulary))
}
