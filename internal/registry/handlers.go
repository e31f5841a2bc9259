package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/resources"
)

// Func computes one feature for one row. The returned value must match the
// feature's Kind: int, float64 or feature.Composition.
type Func func(ctx context.Context, row *feature.Row, res *resources.Set) (any, error)

// RegisteredFeature holds the compiled Go parts of a feature.
type RegisteredFeature struct {
	Kind  feature.Kind
	Needs resources.Capabilities
	// Fn is nil for feature.KindCorpus features.
	Fn Func
}

// RegisterFeature registers a Go function for a feature name.
func (r *Registry) RegisterFeature(name feature.Name, f *RegisteredFeature) {
	if _, exists := r.features[name]; exists {
		panic(fmt.Sprintf("feature with name '%s' already registered", name))
	}
	if f.Fn == nil && f.Kind != feature.KindCorpus {
		panic(fmt.Sprintf("feature '%s' of kind %s has no function", name, f.Kind))
	}
	slog.Debug("Registering feature.", "name", name, "kind", f.Kind.String())
	r.features[name] = f
}
