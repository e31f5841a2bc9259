package nlp

import (
	"context"
	"unicode"
)

// Token is a single analyzed token.
type Token struct {
	Text string
	// POS is one of the tags returned by POSTags.
	POS string
	// IsAlpha is true when Text is non-empty and made of letters only.
	IsAlpha bool
}

// Doc is the analysis of one message.
type Doc struct {
	Text   string
	Tokens []Token
}

// Len returns the number of tokens.
func (d *Doc) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Tokens)
}

// Analyzer tokenizes and POS-tags text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*Doc, error)
}

// IsAlpha reports whether s is non-empty and every rune is a letter.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
