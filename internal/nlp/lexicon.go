package nlp

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/vk/msgfeatures/internal/fsutil"
)

// LexiconExt is the extension of the tagged word lists inside a model directory.
const LexiconExt = ".tsv"

// VocabularyFile is the optional plain word list inside a model directory.
const VocabularyFile = "vocab.txt"

// LexiconModel is a dictionary driven tagger. Each known form maps to the
// universal tag it most often carries; unknown forms are tagged by shape.
type LexiconModel struct {
	forms map[string]string
}

// NewLexiconModel builds a model from an in-memory form → tag table.
// Forms are lowercased and tags outside the fixed list are rejected.
func NewLexiconModel(forms map[string]string) (*LexiconModel, error) {
	m := &LexiconModel{forms: make(map[string]string, len(forms))}
	for form, tag := range forms {
		if err := m.add(form, tag); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// LoadLexiconModel reads every *.tsv file below dir. Lines are
// `form<TAB>TAG`; blank lines and lines starting with '#' are skipped. When a
// form appears twice the first tag wins.
func LoadLexiconModel(ctx context.Context, dir string) (*LexiconModel, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(dir, LexiconExt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan model directory %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("model directory %s has no %s lexicon files", dir, LexiconExt)
	}

	m := &LexiconModel{forms: make(map[string]string)}
	for _, path := range files {
		if err := m.loadFile(path); err != nil {
			return nil, err
		}
		logger.Debug("Loaded lexicon file.", "file", path)
	}
	logger.Info("Lexicon model loaded.", "dir", dir, "forms", len(m.forms))
	return m, nil
}

func (m *LexiconModel) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		form, tag, ok := strings.Cut(line, "\t")
		if !ok {
			return fmt.Errorf("%s:%d: expected form<TAB>tag", filepath.Base(path), lineNo)
		}
		if _, seen := m.forms[strings.ToLower(form)]; seen {
			continue
		}
		if err := m.add(form, tag); err != nil {
			return fmt.Errorf("%s:%d: %w", filepath.Base(path), lineNo, err)
		}
	}
	return sc.Err()
}

func (m *LexiconModel) add(form, tag string) error {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if !IsPOSTag(tag) {
		return fmt.Errorf("unknown POS tag %q for form %q", tag, form)
	}
	m.forms[strings.ToLower(strings.TrimSpace(form))] = tag
	return nil
}

// Forms returns the known lowercase forms. Used to build a vocabulary when the
// model directory has no vocab.txt.
func (m *LexiconModel) Forms() []string {
	out := make([]string, 0, len(m.forms))
	for f := range m.forms {
		out = append(out, f)
	}
	return out
}

// Analyze implements Analyzer.
func (m *LexiconModel) Analyze(_ context.Context, text string) (*Doc, error) {
	raw := tokenize(text)
	doc := &Doc{Text: text, Tokens: make([]Token, len(raw))}
	for i, t := range raw {
		doc.Tokens[i] = Token{
			Text:    t.text,
			POS:     m.tag(t, i == 0),
			IsAlpha: IsAlpha(t.text),
		}
	}
	return doc, nil
}

func (m *LexiconModel) tag(t rawToken, first bool) string {
	switch t.kind {
	case kindSpace:
		return TagSPACE
	case kindPunct:
		return TagPUNCT
	case kindSymbol:
		return TagSYM
	case kindNumber:
		return TagNUM
	}

	if tag, ok := m.forms[strings.ToLower(t.text)]; ok {
		return tag
	}
	if strings.ContainsAny(t.text, "'’") {
		// unknown elided form: l', dell', un'
		return TagDET
	}
	if !first && unicode.IsUpper([]rune(t.text)[0]) {
		return TagPROPN
	}
	return TagNOUN
}
