package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/vk/msgfeatures/internal/classify"
	"github.com/vk/msgfeatures/internal/nlp"
	"github.com/vk/msgfeatures/internal/resources"
)

// FixedClassifier labels every text with the same label.
type FixedClassifier string

// Predict implements classify.Classifier.
func (f FixedClassifier) Predict(_ context.Context, texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i := range out {
		out[i] = string(f)
	}
	return out, nil
}

// FakeLoader is an in-memory resources.Loader that counts how often each
// resource is requested.
type FakeLoader struct {
	Italian        nlp.Analyzer
	ItalianVocab   nlp.Vocabulary
	English        nlp.Analyzer
	EnglishVocab   nlp.Vocabulary
	SentimentLabel string
	EmotionLabel   string

	mu    sync.Mutex
	calls map[string]int
}

var _ resources.Loader = (*FakeLoader)(nil)

// NewFakeLoader returns a loader backed by a tiny Italian and English lexicon.
func NewFakeLoader() *FakeLoader {
	it, err := nlp.NewLexiconModel(map[string]string{
		"ciao": nlp.TagINTJ, "mondo": nlp.TagNOUN, "mario": nlp.TagPROPN,
		"mangia": nlp.TagVERB, "la": nlp.TagDET, "pasta": nlp.TagNOUN,
	})
	if err != nil {
		panic(err)
	}
	en, err := nlp.NewLexiconModel(map[string]string{"hello": nlp.TagINTJ, "world": nlp.TagNOUN})
	if err != nil {
		panic(err)
	}
	return &FakeLoader{
		Italian:        it,
		ItalianVocab:   nlp.NewVocabulary(it.Forms()...),
		English:        en,
		EnglishVocab:   nlp.NewVocabulary("hello", "world", "meeting"),
		SentimentLabel: "positive",
		EmotionLabel:   "joy",
		calls:          make(map[string]int),
	}
}

func (l *FakeLoader) hit(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls[name]++
}

// Calls returns how many times the named resource was loaded.
func (l *FakeLoader) Calls(name string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls[name]
}

// ItalianModel implements resources.Loader.
func (l *FakeLoader) ItalianModel(context.Context) (nlp.Analyzer, error) {
	l.hit("italian_model")
	return l.Italian, nil
}

// ItalianVocabulary implements resources.Loader.
func (l *FakeLoader) ItalianVocabulary(context.Context) (nlp.Vocabulary, error) {
	l.hit("italian_vocabulary")
	return l.ItalianVocab, nil
}

// EnglishModel implements resources.Loader.
func (l *FakeLoader) EnglishModel(context.Context) (nlp.Analyzer, error) {
	l.hit("english_model")
	return l.English, nil
}

// EnglishVocabulary implements resources.Loader.
func (l *FakeLoader) EnglishVocabulary(context.Context) (nlp.Vocabulary, error) {
	l.hit("english_vocabulary")
	return l.EnglishVocab, nil
}

// SentimentClassifier implements resources.Loader.
func (l *FakeLoader) SentimentClassifier(context.Context) (classify.Classifier, error) {
	l.hit("sentiment")
	if l.SentimentLabel == "" {
		return nil, fmt.Errorf("no sentiment label configured")
	}
	return FixedClassifier(l.SentimentLabel), nil
}

// EmotionClassifier implements resources.Loader.
func (l *FakeLoader) EmotionClassifier(context.Context) (classify.Classifier, error) {
	l.hit("emotion")
	if l.EmotionLabel == "" {
		return nil, fmt.Errorf("no emotion label configured")
	}
	return FixedClassifier(l.EmotionLabel), nil
}
