package nlp

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// Language ids produced by LanguageDetector.
const (
	LanguageItalian = 0
	LanguageEnglish = 1
	LanguageOther   = -1
)

// LanguageDetector tells Italian from English messages using whatlanggo's
// trigram profiles restricted to those two languages.
type LanguageDetector struct {
	options whatlanggo.Options
}

// NewLanguageDetector returns a detector limited to Italian and English.
func NewLanguageDetector() *LanguageDetector {
	return &LanguageDetector{options: whatlanggo.Options{
		Whitelist: map[whatlanggo.Lang]bool{
			whatlanggo.Ita: true,
			whatlanggo.Eng: true,
		},
	}}
}

// Detect returns LanguageItalian, LanguageEnglish or LanguageOther when the
// text is not written in Latin script or the guess is not reliable.
func (d *LanguageDetector) Detect(text string) int {
	info := whatlanggo.DetectWithOptions(text, d.options)
	if info.Script != unicode.Latin || !info.IsReliable() {
		return LanguageOther
	}
	switch info.Lang {
	case whatlanggo.Ita:
		return LanguageItalian
	case whatlanggo.Eng:
		return LanguageEnglish
	}
	return LanguageOther
}
