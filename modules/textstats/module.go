// Package textstats registers the character-level features: uppercase_count,
// char_count and word_length.
package textstats

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// CountUppercase returns the number of uppercase code points in s.
func CountUppercase(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return n
}

// CountChars returns the number of code points in s.
func CountChars(s string) int {
	return utf8.RuneCountInString(s)
}

// MeanWordLength returns the mean code point length of the whitespace
// separated words of s, rounded to 2 decimals, or 0 when there are none.
func MeanWordLength(s string) float64 {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return feature.Round(float64(total) / float64(len(words)))
}

// OnUppercaseCount computes uppercase_count.
func OnUppercaseCount(_ context.Context, row *feature.Row, _ *resources.Set) (any, error) {
	return CountUppercase(row.Message), nil
}

// OnCharCount computes char_count.
func OnCharCount(_ context.Context, row *feature.Row, _ *resources.Set) (any, error) {
	return CountChars(row.Message), nil
}

// OnWordLength computes word_length.
func OnWordLength(_ context.Context, row *feature.Row, _ *resources.Set) (any, error) {
	return MeanWordLength(row.Message), nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFeature(feature.UppercaseCount, &registry.RegisteredFeature{Kind: feature.KindInt, Fn: OnUppercaseCount})
	r.RegisterFeature(feature.CharCount, &registry.RegisteredFeature{Kind: feature.KindInt, Fn: OnCharCount})
	r.RegisterFeature(feature.WordLength, &registry.RegisteredFeature{Kind: feature.KindFloat, Fn: OnWordLength})
}
