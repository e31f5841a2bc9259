package pos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/nlp"
	"github.com/vk/msgfeatures/internal/registry"
)

func italianModel(t *testing.T) *nlp.LexiconModel {
	t.Helper()
	m, err := nlp.NewLexiconModel(map[string]string{
		"mario":  nlp.TagPROPN,
		"mangia": nlp.TagVERB,
		"la":     nlp.TagDET,
		"pasta":  nlp.TagNOUN,
		"ciao":   nlp.TagINTJ,
	})
	require.NoError(t, err)
	return m
}

func analyze(t *testing.T, text string) *nlp.Doc {
	t.Helper()
	doc, err := italianModel(t).Analyze(context.Background(), text)
	require.NoError(t, err)
	return doc
}

func TestComposition(t *testing.T) {
	got := Composition(analyze(t, "Mario mangia la pasta"))
	assert.Equal(t, feature.Composition{
		nlp.TagPROPN: 0.25, nlp.TagVERB: 0.25, nlp.TagDET: 0.25, nlp.TagNOUN: 0.25,
	}, got)
}

func TestComposition_SumsToOne(t *testing.T) {
	for _, text := range []string{"ciao!", "Mario mangia la pasta, ciao 😀", "la la pasta"} {
		var sum float64
		for tag, share := range Composition(analyze(t, text)) {
			assert.True(t, nlp.IsPOSTag(tag), tag)
			sum += share
		}
		assert.InDelta(t, 1.0, sum, 0.05, text)
	}
}

func TestComposition_Empty(t *testing.T) {
	assert.Empty(t, Composition(analyze(t, "")))
	assert.Empty(t, Composition(nil))
}

func TestFirstWordType(t *testing.T) {
	assert.Equal(t, -1, FirstWordType(analyze(t, "")))
	assert.Equal(t, -1, FirstWordType(nil))
	assert.Equal(t, nlp.POSIndex(nlp.TagINTJ), FirstWordType(analyze(t, "Ciao Mario")))
	assert.Equal(t, nlp.POSIndex(nlp.TagVERB), FirstWordType(analyze(t, "mangia")))
	assert.Equal(t, nlp.POSIndex(nlp.TagPUNCT), FirstWordType(analyze(t, "!!")))
}

type countingAnalyzer struct {
	nlp.Analyzer
	calls int
}

func (c *countingAnalyzer) Analyze(ctx context.Context, text string) (*nlp.Doc, error) {
	c.calls++
	return c.Analyzer.Analyze(ctx, text)
}

func TestFeaturesShareRowAnalysis(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	analyzer := &countingAnalyzer{Analyzer: italianModel(t)}

	ctx := context.Background()
	row := feature.NewRow(0, "Mario mangia", analyzer)
	for _, name := range []feature.Name{feature.MessageComposition, feature.FirstWordType} {
		f, ok := r.Lookup(name)
		require.True(t, ok)
		_, err := f.Fn(ctx, row, nil)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, analyzer.calls)
}
