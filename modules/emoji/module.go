// Package emoji registers emoji_count and unique_emoji_count.
package emoji

import (
	"context"

	"github.com/forPelevin/gomoji"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Count returns the number of emoji occurrences in s.
func Count(s string) int {
	return len(gomoji.CollectAll(s))
}

// CountUnique returns the number of distinct emoji in s.
func CountUnique(s string) int {
	seen := make(map[string]struct{})
	for _, e := range gomoji.CollectAll(s) {
		seen[e.Character] = struct{}{}
	}
	return len(seen)
}

// OnEmojiCount computes emoji_count.
func OnEmojiCount(_ context.Context, row *feature.Row, _ *resources.Set) (any, error) {
	return Count(row.Message), nil
}

// OnUniqueEmojiCount computes unique_emoji_count.
func OnUniqueEmojiCount(_ context.Context, row *feature.Row, _ *resources.Set) (any, error) {
	return CountUnique(row.Message), nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFeature(feature.EmojiCount, &registry.RegisteredFeature{Kind: feature.KindInt, Fn: OnEmojiCount})
	r.RegisterFeature(feature.UniqueEmojiCount, &registry.RegisteredFeature{Kind: feature.KindInt, Fn: OnUniqueEmojiCount})
}
