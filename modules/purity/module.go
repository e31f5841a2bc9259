// Package purity registers the language purity ratios: englishness and
// italianness.
package purity

import (
	"context"
	"errors"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/nlp"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var errEnglishNotLoaded = errors.New("english model or vocabulary not loaded")

// VocabularyCount returns the share of alphabetic tokens of doc whose
// lowercase form is in vocab, rounded to 2 decimals. Messages without
// alphabetic tokens score 0.
func VocabularyCount(doc *nlp.Doc, vocab nlp.Vocabulary) float64 {
	if doc == nil {
		return 0
	}
	known, total := 0, 0
	for _, tok := range doc.Tokens {
		if !tok.IsAlpha {
			continue
		}
		total++
		if vocab.Contains(tok.Text) {
			known++
		}
	}
	if total == 0 {
		return 0
	}
	return feature.Round(float64(known) / float64(total))
}

// OnEnglishness computes englishness with the English analyzer. Its
// analysis is not shared with other features.
func OnEnglishness(ctx context.Context, row *feature.Row, res *resources.Set) (any, error) {
	if res == nil || res.English == nil || res.EnglishVocabulary == nil {
		return nil, errEnglishNotLoaded
	}
	doc, err := res.English.Analyze(ctx, row.Message)
	if err != nil {
		return nil, err
	}
	return VocabularyCount(doc, res.EnglishVocabulary), nil
}

// OnItalianness computes italianness on the row's cached Italian analysis.
func OnItalianness(ctx context.Context, row *feature.Row, res *resources.Set) (any, error) {
	doc, err := row.Italian(ctx)
	if err != nil {
		return nil, err
	}
	var vocab nlp.Vocabulary
	if res != nil {
		vocab = res.ItalianVocabulary
	}
	return VocabularyCount(doc, vocab), nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFeature(feature.Englishness, &registry.RegisteredFeature{
		Kind:  feature.KindFloat,
		Needs: resources.EnglishModel | resources.EnglishVocabulary,
		Fn:    OnEnglishness,
	})
	r.RegisterFeature(feature.Italianness, &registry.RegisteredFeature{
		Kind:  feature.KindFloat,
		Needs: resources.ItalianModel | resources.ItalianVocabulary,
		Fn:    OnItalianness,
	})
}
