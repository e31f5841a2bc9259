// Package pos registers the part-of-speech features computed on the Italian
// analysis: message_composition and first_word_type.
package pos

import (
	"context"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/nlp"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Composition returns the share of tokens per POS tag, each rounded to 2
// decimals. Tags that do not occur are absent.
func Composition(doc *nlp.Doc) feature.Composition {
	out := make(feature.Composition)
	total := doc.Len()
	if total == 0 {
		return out
	}
	counts := make(map[string]int)
	for _, tok := range doc.Tokens {
		counts[tok.POS]++
	}
	for tag, n := range counts {
		out[tag] = feature.Round(float64(n) / float64(total))
	}
	return out
}

// FirstWordType returns the index in nlp.POSTags of the first token's tag,
// or -1 for an empty message.
func FirstWordType(doc *nlp.Doc) int {
	if doc == nil || doc.Text == "" || len(doc.Tokens) == 0 {
		return -1
	}
	return nlp.POSIndex(doc.Tokens[0].POS)
}

// OnMessageComposition computes message_composition.
func OnMessageComposition(ctx context.Context, row *feature.Row, _ *resources.Set) (any, error) {
	doc, err := row.Italian(ctx)
	if err != nil {
		return nil, err
	}
	return Composition(doc), nil
}

// OnFirstWordType computes first_word_type.
func OnFirstWordType(ctx context.Context, row *feature.Row, _ *resources.Set) (any, error) {
	doc, err := row.Italian(ctx)
	if err != nil {
		return nil, err
	}
	return FirstWordType(doc), nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFeature(feature.MessageComposition, &registry.RegisteredFeature{
		Kind:  feature.KindComposition,
		Needs: resources.ItalianModel,
		Fn:    OnMessageComposition,
	})
	r.RegisterFeature(feature.FirstWordType, &registry.RegisteredFeature{
		Kind:  feature.KindInt,
		Needs: resources.ItalianModel,
		Fn:    OnFirstWordType,
	})
}
