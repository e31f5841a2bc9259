package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vk/msgfeatures/internal/ctxlog"
)

// DefaultInferenceURL is the hosted inference API root used when no
// endpoint is configured.
const DefaultInferenceURL = "https://api-inference.huggingface.co/models/"

// Default model ids for the Italian sentiment and emotion classifiers.
const (
	DefaultSentimentModel = "MilaNLProc/feel-it-italian-sentiment"
	DefaultEmotionModel   = "MilaNLProc/feel-it-italian-emotion"
)

// Inference calls a text-classification endpoint that speaks the Hugging Face
// inference protocol: POST {"inputs": [...]} and receive, per input, a list
// of {label, score} candidates.
type Inference struct {
	url    string
	token  string
	client *http.Client
}

// NewInference creates a client for model served under baseURL. An empty
// baseURL means DefaultInferenceURL; a nil client means http.DefaultClient.
func NewInference(baseURL, model, token string, client *http.Client) *Inference {
	if baseURL == "" {
		baseURL = DefaultInferenceURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Inference{
		url:    strings.TrimSuffix(baseURL, "/") + "/" + model,
		token:  token,
		client: client,
	}
}

type inferenceRequest struct {
	Inputs []string `json:"inputs"`
}

type candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Predict implements Classifier.
func (c *Inference) Predict(ctx context.Context, texts []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	body, err := json.Marshal(inferenceRequest{Inputs: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to encode inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute inference request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read inference response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference request to %s failed with status %s: %s", c.url, resp.Status, bytes.TrimSpace(raw))
	}

	var results [][]candidate
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}
	if len(results) != len(texts) {
		return nil, fmt.Errorf("inference returned %d results for %d inputs", len(results), len(texts))
	}

	labels := make([]string, len(results))
	for i, cands := range results {
		if len(cands) == 0 {
			return nil, fmt.Errorf("inference returned no candidates for input %d", i)
		}
		best := cands[0]
		for _, cand := range cands[1:] {
			if cand.Score > best.Score {
				best = cand
			}
		}
		labels[i] = strings.ToLower(best.Label)
	}
	logger.Debug("Inference finished.", "url", c.url, "inputs", len(texts))
	return labels, nil
}
