package nlp

import "unicode"

type tokenKind int

const (
	kindWord tokenKind = iota
	kindNumber
	kindPunct
	kindSymbol
	kindSpace
)

type rawToken struct {
	text string
	kind tokenKind
}

const zeroWidthJoiner = '\u200d'

// Tokenize splits text with the same rules the lexicon model uses and
// returns the token texts.
func Tokenize(text string) []string {
	raw := tokenize(text)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, len(raw))
	for i, t := range raw {
		out[i] = t.text
	}
	return out
}

// tokenize is a rule based splitter modelled on the usual statistical
// pipelines: a single space after a token is trailing whitespace and is not
// a token, any other whitespace run is. Elided articles keep their apostrophe
// ("l'" "amico"), numbers keep inner separators and emoji sequences joined
// by ZWJ or modifiers stay together.
func tokenize(text string) []rawToken {
	rs := []rune(text)
	n := len(rs)
	var out []rawToken

	for i := 0; i < n; {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			j := i
			for j < n && unicode.IsSpace(rs[j]) {
				j++
			}
			ws := rs[i:j]
			if len(out) > 0 && ws[0] == ' ' {
				ws = ws[1:]
			}
			if len(ws) > 0 {
				out = append(out, rawToken{text: string(ws), kind: kindSpace})
			}
			i = j

		case isWordRune(r):
			j := i + 1
		word:
			for j < n {
				c := rs[j]
				switch {
				case isWordRune(c):
					j++
				case isApostrophe(c) && j+1 < n && unicode.IsLetter(rs[j+1]):
					j++
					break word
				case c == '-' && j+1 < n && isWordRune(rs[j+1]):
					j += 2
				case (c == '.' || c == ',') && j+1 < n && unicode.IsDigit(rs[j-1]) && unicode.IsDigit(rs[j+1]):
					j += 2
				default:
					break word
				}
			}
			out = append(out, rawToken{text: string(rs[i:j]), kind: wordKind(rs[i:j])})
			i = j

		case unicode.IsPunct(r):
			j := i + 1
			if r == '.' {
				for j < n && rs[j] == '.' {
					j++
				}
			}
			out = append(out, rawToken{text: string(rs[i:j]), kind: kindPunct})
			i = j

		default:
			j := i + 1
		sequence:
			for j < n {
				c := rs[j]
				switch {
				case c == zeroWidthJoiner && j+1 < n:
					j += 2
				case isEmojiModifier(c):
					j++
				case j == i+1 && isRegionalIndicator(r) && isRegionalIndicator(c):
					j++
				default:
					break sequence
				}
			}
			out = append(out, rawToken{text: string(rs[i:j]), kind: kindSymbol})
			i = j
		}
	}
	return out
}

func isWordRune(r rune) bool {
	if isEmojiModifier(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.Is(unicode.Mn, r)
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func isEmojiModifier(r rune) bool {
	switch {
	case r == '\ufe0e', r == '\ufe0f', r == '\u20e3':
		return true
	case r >= 0x1f3fb && r <= 0x1f3ff:
		return true
	}
	return false
}

func isRegionalIndicator(r rune) bool {
	return r >= 0x1f1e6 && r <= 0x1f1ff
}

func wordKind(rs []rune) tokenKind {
	for _, r := range rs {
		if !unicode.IsDigit(r) && r != '.' && r != ',' {
			return kindWord
		}
	}
	return kindNumber
}
