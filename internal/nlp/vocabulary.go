package nlp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/vk/msgfeatures/internal/ctxlog"
)

// Vocabulary is an immutable set of lowercase words.
type Vocabulary map[string]struct{}

// NewVocabulary builds a vocabulary from words, lowercasing each one.
func NewVocabulary(words ...string) Vocabulary {
	v := make(Vocabulary, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			v[w] = struct{}{}
		}
	}
	return v
}

// Contains reports whether the lowercase form of word is in the vocabulary.
func (v Vocabulary) Contains(word string) bool {
	_, ok := v[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words.
func (v Vocabulary) Len() int {
	return len(v)
}

// ReadVocabulary reads one word per line.
func ReadVocabulary(r io.Reader) (Vocabulary, error) {
	v := make(Vocabulary)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToLower(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		v[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

// LoadVocabulary reads a word list from a local path or, when source is an
// http(s) URL, downloads it. A nil client means http.DefaultClient.
func LoadVocabulary(ctx context.Context, source string, client *http.Client) (Vocabulary, error) {
	logger := ctxlog.FromContext(ctx)

	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if client == nil {
			client = http.DefaultClient
		}
		logger.Info("Downloading vocabulary.", "url", source)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create vocabulary request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to download vocabulary %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("vocabulary download %s failed with status: %s", source, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open vocabulary %s: %w", source, err)
		}
		r = f
	}
	defer r.Close()

	v, err := ReadVocabulary(r)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", source, err)
	}
	logger.Info("Vocabulary loaded.", "source", source, "words", v.Len())
	return v, nil
}
