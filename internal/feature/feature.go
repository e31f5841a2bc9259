// Package feature defines the closed set of feature names, the kinds of
// values they produce and the per-row analysis cache passed to feature
// functions.
package feature

import (
	"context"
	"errors"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/vk/msgfeatures/internal/nlp"
)

// Name identifies a feature in the configuration file.
type Name string

const (
	BagOfWords         Name = "bag_of_words"
	UppercaseCount     Name = "uppercase_count"
	CharCount          Name = "char_count"
	WordLength         Name = "word_length"
	EmojiCount         Name = "emoji_count"
	UniqueEmojiCount   Name = "unique_emoji_count"
	Englishness        Name = "englishness"
	Italianness        Name = "italianness"
	MessageComposition Name = "message_composition"
	FirstWordType      Name = "first_word_type"
	Sentiment          Name = "sentiment"
	Emotion            Name = "emotion"
	DetectedLanguage   Name = "detected_language"
)

// Kind is the type of value a feature produces for each row.
type Kind int

const (
	// KindInt features return int.
	KindInt Kind = iota
	// KindFloat features return float64.
	KindFloat
	// KindComposition features return Composition.
	KindComposition
	// KindCorpus features work on the whole message column at once and are
	// never called per row.
	KindCorpus
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindComposition:
		return "composition"
	case KindCorpus:
		return "corpus"
	}
	return "unknown"
}

// Composition maps POS tags to their share of a message's tokens. Tags that
// do not occur are absent and read as 0.
type Composition map[string]float64

// Round rounds x to 2 decimals, half to even.
func Round(x float64) float64 {
	return scalar.RoundEven(x, 2)
}

// ErrNoItalianModel is returned when a feature asks for the Italian analysis
// but no Italian analyzer was loaded.
var ErrNoItalianModel = errors.New("italian language model not loaded")

// Row is the input of a per-row feature call. It memoizes the Italian
// analysis of Message so that several features evaluated on the same row
// share one analyzer call. A Row must not outlive its row.
type Row struct {
	Index   int
	Message string

	italian    nlp.Analyzer
	italianDoc *nlp.Doc
}

// NewRow returns a fresh Row with an empty analysis cache.
func NewRow(index int, message string, italian nlp.Analyzer) *Row {
	return &Row{Index: index, Message: message, italian: italian}
}

// Italian returns the Italian analysis of the message, computing it on the
// first call.
func (r *Row) Italian(ctx context.Context) (*nlp.Doc, error) {
	if r.italianDoc != nil {
		return r.italianDoc, nil
	}
	if r.italian == nil {
		return nil, ErrNoItalianModel
	}
	doc, err := r.italian.Analyze(ctx, r.Message)
	if err != nil {
		return nil, err
	}
	r.italianDoc = doc
	return doc, nil
}
