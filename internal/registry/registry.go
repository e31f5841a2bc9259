package registry

import (
	"sort"

	"github.com/vk/msgfeatures/internal/feature"
)

// Module is the interface that all feature modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered features for a single application instance.
type Registry struct {
	features map[feature.Name]*RegisteredFeature
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		features: make(map[feature.Name]*RegisteredFeature),
	}
}

// Lookup returns the feature registered under name.
func (r *Registry) Lookup(name feature.Name) (*RegisteredFeature, bool) {
	f, ok := r.features[name]
	return f, ok
}

// Names returns every registered feature name, sorted.
func (r *Registry) Names() []feature.Name {
	names := make([]feature.Name, 0, len(r.features))
	for name := range r.features {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
