package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/resources"
)

func constant(v any) Func {
	return func(context.Context, *feature.Row, *resources.Set) (any, error) {
		return v, nil
	}
}

func newTestRegistry() *Registry {
	r := New()
	r.RegisterFeature(feature.CharCount, &RegisteredFeature{Kind: feature.KindInt, Fn: constant(1)})
	r.RegisterFeature(feature.Italianness, &RegisteredFeature{
		Kind:  feature.KindFloat,
		Needs: resources.ItalianModel | resources.ItalianVocabulary,
		Fn:    constant(0.5),
	})
	r.RegisterFeature(feature.Englishness, &RegisteredFeature{
		Kind:  feature.KindFloat,
		Needs: resources.EnglishModel | resources.EnglishVocabulary,
		Fn:    constant(0.5),
	})
	r.RegisterFeature(feature.BagOfWords, &RegisteredFeature{Kind: feature.KindCorpus})
	return r
}

func TestRegisterFeature_Duplicate(t *testing.T) {
	r := newTestRegistry()
	assert.Panics(t, func() {
		r.RegisterFeature(feature.CharCount, &RegisteredFeature{Kind: feature.KindInt, Fn: constant(2)})
	})
}

func TestRegisterFeature_MissingFunc(t *testing.T) {
	assert.Panics(t, func() {
		New().RegisterFeature(feature.CharCount, &RegisteredFeature{Kind: feature.KindInt})
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()
	r := newTestRegistry()

	testCases := []struct {
		name    string
		input   []string
		want    []feature.Name
		wantErr string
	}{
		{
			name:  "preserves order",
			input: []string{"italianness", "char_count", "bag_of_words"},
			want:  []feature.Name{feature.Italianness, feature.CharCount, feature.BagOfWords},
		},
		{
			name:  "empty",
			input: nil,
			want:  []feature.Name{},
		},
		{
			name:    "unknown names are all reported",
			input:   []string{"char_count", "charcount", "vibes"},
			wantErr: "charcount, vibes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := r.Validate(context.Background(), tc.input)
			if tc.wantErr != "" {
				require.ErrorIs(t, err, ErrUnknownFeature)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCapabilities(t *testing.T) {
	r := newTestRegistry()

	caps := r.Capabilities([]feature.Name{feature.Englishness, feature.CharCount})
	assert.Equal(t, resources.EnglishModel|resources.EnglishVocabulary, caps)
	assert.False(t, caps.Has(resources.ItalianModel))

	assert.Equal(t, resources.Capabilities(0), r.Capabilities([]feature.Name{feature.BagOfWords}))
}

func TestNames(t *testing.T) {
	r := newTestRegistry()
	assert.Equal(t, []feature.Name{
		feature.BagOfWords, feature.CharCount, feature.Englishness, feature.Italianness,
	}, r.Names())

	f, ok := r.Lookup(feature.CharCount)
	require.True(t, ok)
	assert.Equal(t, feature.KindInt, f.Kind)
	_, ok = r.Lookup("nope")
	assert.False(t, ok)
}
