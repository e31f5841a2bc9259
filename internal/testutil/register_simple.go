package testutil

import (
	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/registry"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers a single feature.
type SimpleModule struct {
	Name    feature.Name
	Feature *registry.RegisteredFeature
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Name != "" && m.Feature != nil {
		r.RegisterFeature(m.Name, m.Feature)
	}
}
