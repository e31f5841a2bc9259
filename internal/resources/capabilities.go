package resources

import "strings"

// Capabilities is a bitmask of the resources a feature set requires.
type Capabilities uint16

const (
	ItalianModel Capabilities = 1 << iota
	ItalianVocabulary
	EnglishModel
	EnglishVocabulary
	SentimentClassifier
	EmotionClassifier
	LanguageDetector
)

var capabilityNames = []struct {
	c    Capabilities
	name string
}{
	{ItalianModel, "italian_model"},
	{ItalianVocabulary, "italian_vocabulary"},
	{EnglishModel, "english_model"},
	{EnglishVocabulary, "english_vocabulary"},
	{SentimentClassifier, "sentiment_classifier"},
	{EmotionClassifier, "emotion_classifier"},
	{LanguageDetector, "language_detector"},
}

// Has reports whether every bit of o is set in c.
func (c Capabilities) Has(o Capabilities) bool {
	return c&o == o
}

// String lists the set capabilities joined by "|", or "none".
func (c Capabilities) String() string {
	var parts []string
	for _, n := range capabilityNames {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
