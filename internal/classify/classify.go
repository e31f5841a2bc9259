// Package classify wraps text classifiers (sentiment, emotion) behind a
// common interface and maps their string labels onto small integer ids.
package classify

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownLabel is returned when a classifier predicts a label that is not
// part of the mapping table.
var ErrUnknownLabel = errors.New("unknown classifier label")

// Classifier predicts one label per input text.
type Classifier interface {
	Predict(ctx context.Context, texts []string) ([]string, error)
}

// Mapping translates classifier labels into ids.
type Mapping map[string]int

// SentimentMapping is the fixed table for the two sentiment classes.
func SentimentMapping() Mapping {
	return Mapping{"negative": 0, "positive": 1}
}

// EmotionMapping is the fixed table for the four emotion classes.
func EmotionMapping() Mapping {
	return Mapping{"anger": 0, "fear": 1, "joy": 2, "sadness": 3}
}

// Labels returns the labels of m ordered by id.
func (m Mapping) Labels() []string {
	out := make([]string, len(m))
	for label, id := range m {
		if id >= 0 && id < len(out) {
			out[id] = label
		}
	}
	return out
}

// Mapped pairs a Classifier with the table used to turn its output into ids.
type Mapped struct {
	Classifier Classifier
	Mapping    Mapping
}

// NewMapped returns a Mapped classifier.
func NewMapped(c Classifier, m Mapping) *Mapped {
	return &Mapped{Classifier: c, Mapping: m}
}

// Predict classifies a single text and returns its id.
func (m *Mapped) Predict(ctx context.Context, text string) (int, error) {
	labels, err := m.Classifier.Predict(ctx, []string{text})
	if err != nil {
		return 0, err
	}
	if len(labels) != 1 {
		return 0, fmt.Errorf("classifier returned %d labels for 1 text", len(labels))
	}
	id, ok := m.Mapping[labels[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, labels[0])
	}
	return id, nil
}
