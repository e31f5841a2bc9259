package classify

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var wordRegex = regexp.MustCompile(`\p{L}+`)

// Lexicon is an offline classifier driven by cue words. Every label owns a
// list of words; the label with the most hits wins and ties go to the label
// listed first. A text with no hits gets the fallback label.
type Lexicon struct {
	labels   []string
	cues     map[string][]int
	fallback string
}

// NewLexicon builds a classifier from label → cue words. order fixes the
// tie-break order and must list every label of cues; fallback is returned
// when no cue matches.
func NewLexicon(order []string, cues map[string][]string, fallback string) (*Lexicon, error) {
	l := &Lexicon{cues: make(map[string][]int), fallback: fallback}
	index := make(map[string]int, len(order))
	for i, label := range order {
		index[label] = i
		l.labels = append(l.labels, label)
	}
	if _, ok := index[fallback]; !ok {
		return nil, fmt.Errorf("fallback label %q is not in the label order", fallback)
	}
	for label, words := range cues {
		id, ok := index[label]
		if !ok {
			return nil, fmt.Errorf("cue label %q is not in the label order", label)
		}
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			l.cues[w] = append(l.cues[w], id)
		}
	}
	return l, nil
}

// ReadLexicon parses `label<TAB>word` lines. Labels are ordered by first
// appearance and the first label is the fallback.
func ReadLexicon(r io.Reader) (*Lexicon, error) {
	var order []string
	cues := make(map[string][]string)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, word, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected label<TAB>word", lineNo)
		}
		label = strings.ToLower(strings.TrimSpace(label))
		if _, seen := cues[label]; !seen {
			order = append(order, label)
		}
		cues[label] = append(cues[label], word)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("lexicon has no labels")
	}
	return NewLexicon(order, cues, order[0])
}

// LoadLexicon reads a lexicon file from path.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()

	l, err := ReadLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return l, nil
}

// Predict implements Classifier.
func (l *Lexicon) Predict(_ context.Context, texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = l.predict(text)
	}
	return out, nil
}

func (l *Lexicon) predict(text string) string {
	hits := make([]int, len(l.labels))
	matched := false
	for _, w := range wordRegex.FindAllString(strings.ToLower(text), -1) {
		for _, id := range l.cues[w] {
			hits[id]++
			matched = true
		}
	}
	if !matched {
		return l.fallback
	}
	best := 0
	for id := range hits {
		if hits[id] > hits[best] {
			best = id
		}
	}
	return l.labels[best]
}
