package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	labels []string
	err    error
}

func (s stubClassifier) Predict(context.Context, []string) ([]string, error) {
	return s.labels, s.err
}

func TestMappings(t *testing.T) {
	assert.Equal(t, []string{"negative", "positive"}, SentimentMapping().Labels())
	assert.Equal(t, []string{"anger", "fear", "joy", "sadness"}, EmotionMapping().Labels())
}

func TestMapped_Predict(t *testing.T) {
	ctx := context.Background()

	id, err := NewMapped(stubClassifier{labels: []string{"joy"}}, EmotionMapping()).Predict(ctx, "che bello")
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	_, err = NewMapped(stubClassifier{labels: []string{"surprise"}}, EmotionMapping()).Predict(ctx, "oh")
	require.ErrorIs(t, err, ErrUnknownLabel)

	_, err = NewMapped(stubClassifier{labels: []string{}}, SentimentMapping()).Predict(ctx, "oh")
	require.Error(t, err)

	boom := errors.New("model offline")
	_, err = NewMapped(stubClassifier{err: boom}, SentimentMapping()).Predict(ctx, "oh")
	require.ErrorIs(t, err, boom)
}
