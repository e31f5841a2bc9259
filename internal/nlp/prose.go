package nlp

import (
	"context"
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Prose is an English Analyzer backed by the prose perceptron tagger.
type Prose struct {
	model *prose.Model
}

// NewProse loads the embedded English tagging model once so that later
// documents reuse it.
func NewProse() (*Prose, error) {
	doc, err := prose.NewDocument("warm up",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load prose model: %w", err)
	}
	return &Prose{model: doc.Model}, nil
}

// Analyze implements Analyzer.
func (p *Prose) Analyze(_ context.Context, text string) (*Doc, error) {
	doc, err := prose.NewDocument(text,
		prose.UsingModel(p.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose: %w", err)
	}

	toks := doc.Tokens()
	out := &Doc{Text: text, Tokens: make([]Token, len(toks))}
	for i, tok := range toks {
		out.Tokens[i] = Token{
			Text:    tok.Text,
			POS:     PennToUniversal(tok.Tag),
			IsAlpha: IsAlpha(tok.Text),
		}
	}
	return out, nil
}

var pennToUniversal = map[string]string{
	"CC": TagCCONJ, "CD": TagNUM, "DT": TagDET, "EX": TagPRON, "FW": TagX,
	"IN": TagADP, "JJ": TagADJ, "JJR": TagADJ, "JJS": TagADJ, "LS": TagX,
	"MD": TagAUX, "NN": TagNOUN, "NNS": TagNOUN, "NNP": TagPROPN, "NNPS": TagPROPN,
	"PDT": TagDET, "POS": TagPART, "PRP": TagPRON, "PRP$": TagPRON, "RB": TagADV,
	"RBR": TagADV, "RBS": TagADV, "RP": TagADP, "SYM": TagSYM, "TO": TagPART,
	"UH": TagINTJ, "VB": TagVERB, "VBD": TagVERB, "VBG": TagVERB, "VBN": TagVERB,
	"VBP": TagVERB, "VBZ": TagVERB, "WDT": TagDET, "WP": TagPRON, "WP$": TagPRON,
	"WRB": TagADV, "$": TagSYM, "#": TagSYM, "``": TagPUNCT, "''": TagPUNCT,
	"(": TagPUNCT, ")": TagPUNCT, ",": TagPUNCT, ".": TagPUNCT, ":": TagPUNCT,
	"-LRB-": TagPUNCT, "-RRB-": TagPUNCT, "NFP": TagPUNCT, "HYPH": TagPUNCT,
	"ADD": TagX, "AFX": TagADJ, "GW": TagX, "XX": TagX, "_SP": TagSPACE,
}

// PennToUniversal maps a Penn Treebank tag onto the universal tag list.
// Unknown tags map to X.
func PennToUniversal(tag string) string {
	if u, ok := pennToUniversal[tag]; ok {
		return u
	}
	return TagX
}
