package sink

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/vk/msgfeatures/internal/ctxlog"
)

// HTTP uploads with a single PUT, as required by pre-signed object URLs.
type HTTP struct {
	URL    string
	Client *http.Client
}

// Put implements Target.
func (h *HTTP) Put(ctx context.Context, data []byte) error {
	logger := ctxlog.FromContext(ctx).With("action", "upload")

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, h.URL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", ParquetContentType)
	req.ContentLength = int64(len(data))

	logger.Info("Uploading output file", "size", len(data), "contentType", ParquetContentType)

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload failed with status: %s", resp.Status)
	}

	logger.Info("Successfully uploaded file", "status", resp.Status)
	return nil
}

// String hides the query string, which carries the pre-signed credentials.
func (h *HTTP) String() string {
	base, _, _ := strings.Cut(h.URL, "?")
	return base
}
