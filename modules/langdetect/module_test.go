package langdetect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/nlp"
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/internal/resources"
)

func TestOnDetectedLanguage(t *testing.T) {
	ctx := context.Background()
	res := &resources.Set{Language: nlp.NewLanguageDetector()}

	got, err := OnDetectedLanguage(ctx, feature.NewRow(0, "Oggi pomeriggio andiamo tutti insieme al mare perché fa molto caldo", nil), res)
	require.NoError(t, err)
	assert.Equal(t, nlp.LanguageItalian, got)

	got, err = OnDetectedLanguage(ctx, feature.NewRow(1, "", nil), res)
	require.NoError(t, err)
	assert.Equal(t, nlp.LanguageOther, got)

	_, err = OnDetectedLanguage(ctx, feature.NewRow(2, "ciao", nil), &resources.Set{})
	require.Error(t, err)
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)
	assert.Equal(t, resources.LanguageDetector, r.Capabilities([]feature.Name{feature.DetectedLanguage}))
}
