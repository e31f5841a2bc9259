package resources

import (
	"context"
	"fmt"

	"github.com/vk/msgfeatures/internal/classify"
	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/vk/msgfeatures/internal/nlp"
)

// Set holds the constructed resources. Fields whose capability was not
// requested stay nil.
type Set struct {
	Italian           nlp.Analyzer
	ItalianVocabulary nlp.Vocabulary
	English           nlp.Analyzer
	EnglishVocabulary nlp.Vocabulary
	Sentiment         *classify.Mapped
	Emotion           *classify.Mapped
	Language          *nlp.LanguageDetector
}

// Loader constructs individual resources. Implementations may be expensive;
// Build calls each method at most once and only when needed.
type Loader interface {
	ItalianModel(ctx context.Context) (nlp.Analyzer, error)
	ItalianVocabulary(ctx context.Context) (nlp.Vocabulary, error)
	EnglishModel(ctx context.Context) (nlp.Analyzer, error)
	EnglishVocabulary(ctx context.Context) (nlp.Vocabulary, error)
	SentimentClassifier(ctx context.Context) (classify.Classifier, error)
	EmotionClassifier(ctx context.Context) (classify.Classifier, error)
}

// Build constructs the resources named by caps using loader.
func Build(ctx context.Context, caps Capabilities, loader Loader) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building resources.", "capabilities", caps.String())

	set := &Set{}
	var err error

	if caps.Has(ItalianModel) {
		if set.Italian, err = loader.ItalianModel(ctx); err != nil {
			return nil, fmt.Errorf("failed to load italian model: %w", err)
		}
	}
	if caps.Has(ItalianVocabulary) {
		if set.ItalianVocabulary, err = loader.ItalianVocabulary(ctx); err != nil {
			return nil, fmt.Errorf("failed to load italian vocabulary: %w", err)
		}
		logger.Debug("Italian vocabulary loaded.", "words", set.ItalianVocabulary.Len())
	}
	if caps.Has(EnglishModel) {
		if set.English, err = loader.EnglishModel(ctx); err != nil {
			return nil, fmt.Errorf("failed to load english model: %w", err)
		}
	}
	if caps.Has(EnglishVocabulary) {
		if set.EnglishVocabulary, err = loader.EnglishVocabulary(ctx); err != nil {
			return nil, fmt.Errorf("failed to load english vocabulary: %w", err)
		}
		logger.Debug("English vocabulary loaded.", "words", set.EnglishVocabulary.Len())
	}
	if caps.Has(SentimentClassifier) {
		c, err := loader.SentimentClassifier(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load sentiment classifier: %w", err)
		}
		set.Sentiment = classify.NewMapped(c, classify.SentimentMapping())
		logger.Debug("Sentiment classifier loaded.", "labels", set.Sentiment.Mapping.Labels())
	}
	if caps.Has(EmotionClassifier) {
		c, err := loader.EmotionClassifier(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load emotion classifier: %w", err)
		}
		set.Emotion = classify.NewMapped(c, classify.EmotionMapping())
		logger.Debug("Emotion classifier loaded.", "labels", set.Emotion.Mapping.Labels())
	}
	if caps.Has(LanguageDetector) {
		set.Language = nlp.NewLanguageDetector()
	}

	logger.Info("Resources ready.", "capabilities", caps.String())
	return set, nil
}
