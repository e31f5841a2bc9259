// Package classifier registers the sentiment and emotion features, which
// delegate to a black-box text classifier and map its label to an id.
package classifier

import (
	"context"
	"errors"

	"github.com/vk/msgfeatures/internal/classify"
	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

var (
	errSentimentNotLoaded = errors.New("sentiment classifier not loaded")
	errEmotionNotLoaded   = errors.New("emotion classifier not loaded")
)

// OnSentiment computes sentiment: 0 negative, 1 positive.
func OnSentiment(ctx context.Context, row *feature.Row, res *resources.Set) (any, error) {
	if res == nil || res.Sentiment == nil {
		return nil, errSentimentNotLoaded
	}
	return predict(ctx, res.Sentiment, row.Message)
}

// OnEmotion computes emotion: 0 anger, 1 fear, 2 joy, 3 sadness.
func OnEmotion(ctx context.Context, row *feature.Row, res *resources.Set) (any, error) {
	if res == nil || res.Emotion == nil {
		return nil, errEmotionNotLoaded
	}
	return predict(ctx, res.Emotion, row.Message)
}

func predict(ctx context.Context, m *classify.Mapped, text string) (any, error) {
	id, err := m.Predict(ctx, text)
	if err != nil {
		return nil, err
	}
	return id, nil
}

// Register registers the handlers with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterFeature(feature.Sentiment, &registry.RegisteredFeature{
		Kind:  feature.KindInt,
		Needs: resources.SentimentClassifier,
		Fn:    OnSentiment,
	})
	r.RegisterFeature(feature.Emotion, &registry.RegisteredFeature{
		Kind:  feature.KindInt,
		Needs: resources.EmotionClassifier,
		Fn:    OnEmotion,
	})
}
