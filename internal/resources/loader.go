package resources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vk/msgfeatures/internal/classify"
	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/vk/msgfeatures/internal/nlp"
)

// ErrNotConfigured is returned when a resource is needed but its source was
// never configured.
var ErrNotConfigured = errors.New("resource source not configured")

// Options locates the resources on disk or over the network.
type Options struct {
	// ItalianModelDir holds the *.tsv lexicon files and an optional vocab.txt.
	ItalianModelDir string
	// EnglishVocabulary is a word list path or http(s) URL.
	EnglishVocabulary string

	// A non-empty lexicon path selects the offline classifier; otherwise the
	// inference endpoint is used.
	SentimentLexicon  string
	SentimentEndpoint string
	SentimentModel    string
	EmotionLexicon    string
	EmotionEndpoint   string
	EmotionModel      string
	InferenceToken    string

	HTTPClient *http.Client
}

// FileLoader implements Loader from Options.
type FileLoader struct {
	opts    Options
	italian *nlp.LexiconModel
}

var _ Loader = (*FileLoader)(nil)

// NewFileLoader returns a loader that reads resources described by opts.
func NewFileLoader(opts Options) *FileLoader {
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	return &FileLoader{opts: opts}
}

func (l *FileLoader) lexiconModel(ctx context.Context) (*nlp.LexiconModel, error) {
	if l.italian != nil {
		return l.italian, nil
	}
	if l.opts.ItalianModelDir == "" {
		return nil, fmt.Errorf("italian model directory: %w", ErrNotConfigured)
	}
	m, err := nlp.LoadLexiconModel(ctx, l.opts.ItalianModelDir)
	if err != nil {
		return nil, err
	}
	l.italian = m
	return m, nil
}

// ItalianModel loads the lexicon model from ItalianModelDir.
func (l *FileLoader) ItalianModel(ctx context.Context) (nlp.Analyzer, error) {
	return l.lexiconModel(ctx)
}

// ItalianVocabulary reads vocab.txt from the model directory, falling back to
// the forms of the lexicon itself.
func (l *FileLoader) ItalianVocabulary(ctx context.Context) (nlp.Vocabulary, error) {
	if l.opts.ItalianModelDir == "" {
		return nil, fmt.Errorf("italian model directory: %w", ErrNotConfigured)
	}
	path := filepath.Join(l.opts.ItalianModelDir, nlp.VocabularyFile)
	if _, err := os.Stat(path); err == nil {
		return nlp.LoadVocabulary(ctx, path, l.opts.HTTPClient)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ctxlog.FromContext(ctx).Debug("No vocabulary file, using lexicon forms.", "dir", l.opts.ItalianModelDir)
	m, err := l.lexiconModel(ctx)
	if err != nil {
		return nil, err
	}
	return nlp.NewVocabulary(m.Forms()...), nil
}

// EnglishModel returns the prose tagger.
func (l *FileLoader) EnglishModel(context.Context) (nlp.Analyzer, error) {
	p, err := nlp.NewProse()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// EnglishVocabulary loads the configured English word list.
func (l *FileLoader) EnglishVocabulary(ctx context.Context) (nlp.Vocabulary, error) {
	if l.opts.EnglishVocabulary == "" {
		return nil, fmt.Errorf("english vocabulary: %w", ErrNotConfigured)
	}
	return nlp.LoadVocabulary(ctx, l.opts.EnglishVocabulary, l.opts.HTTPClient)
}

// SentimentClassifier returns the lexicon or inference sentiment classifier.
func (l *FileLoader) SentimentClassifier(ctx context.Context) (classify.Classifier, error) {
	return l.classifier(ctx, l.opts.SentimentLexicon, l.opts.SentimentEndpoint, l.opts.SentimentModel, classify.DefaultSentimentModel)
}

// EmotionClassifier returns the lexicon or inference emotion classifier.
func (l *FileLoader) EmotionClassifier(ctx context.Context) (classify.Classifier, error) {
	return l.classifier(ctx, l.opts.EmotionLexicon, l.opts.EmotionEndpoint, l.opts.EmotionModel, classify.DefaultEmotionModel)
}

func (l *FileLoader) classifier(ctx context.Context, lexicon, endpoint, model, defaultModel string) (classify.Classifier, error) {
	logger := ctxlog.FromContext(ctx)
	if lexicon != "" {
		logger.Debug("Using lexicon classifier.", "path", lexicon)
		lex, err := classify.LoadLexicon(lexicon)
		if err != nil {
			return nil, err
		}
		return lex, nil
	}
	if endpoint == "" {
		endpoint = classify.DefaultInferenceURL
	}
	if model == "" {
		model = defaultModel
	}
	logger.Debug("Using inference classifier.", "endpoint", endpoint, "model", model)
	return classify.NewInference(endpoint, model, l.opts.InferenceToken, l.opts.HTTPClient), nil
}
