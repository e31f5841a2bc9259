// Package langdetect registers detected_language.
package langdetect

import (
	"context"
	"errors"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var errDetectorNotLoaded = errors.New("language detector not loaded")

// OnDetectedLanguage computes detected_language: 0 Italian, 1 English, -1
// anything else or too short to tell.
func OnDetectedLanguage(_ context.Context, row *feature.Row, res *resources.Set) (any, error) {
	if res == nil || res.Language == nil {
		return nil, errDetectorNotLoaded
	}
	return res.Language.Detect(row.Message), nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFeature(feature.DetectedLanguage, &registry.RegisteredFeature{
		Kind:  feature.KindInt,
		Needs: resources.LanguageDetector,
		Fn:    OnDetectedLanguage,
	})
}
