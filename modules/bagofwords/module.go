// Package bagofwords registers bag_of_words. The feature works on the whole
// message column, so it has no per-row function; the pipeline runs it
// through internal/bow before the row loop.
package bagofwords

import (
	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the feature with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFeature(feature.BagOfWords, &registry.RegisteredFeature{Kind: feature.KindCorpus})
}
