// Package sink delivers the encoded output file to its destination: a local
// path, an S3 object or a pre-signed HTTP upload URL.
package sink

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ParquetContentType is sent with remote uploads.
const ParquetContentType = "application/vnd.apache.parquet"

// Target receives the finished output file.
type Target interface {
	Put(ctx context.Context, data []byte) error
	String() string
}

// Options configures the remote targets.
type Options struct {
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	// S3PathStyle addresses buckets as endpoint/bucket/key, as MinIO expects.
	S3PathStyle bool

	HTTPClient *http.Client
}

// Parse selects a Target from its textual form:
//
//	out/features.parquet          local file
//	s3://bucket/path/key.parquet  S3 object
//	https://host/presigned?...    HTTP PUT
func Parse(target string, opts Options) (Target, error) {
	if target == "" {
		return nil, fmt.Errorf("empty output target")
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	scheme, _, found := strings.Cut(target, "://")
	if !found {
		return &File{Path: target}, nil
	}

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid output target %q: %w", target, err)
	}
	switch strings.ToLower(scheme) {
	case "s3":
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("s3 target %q must be s3://bucket/key", target)
		}
		return NewS3(u.Host, key, opts), nil
	case "http", "https":
		return &HTTP{URL: target, Client: opts.HTTPClient}, nil
	case "file":
		return &File{Path: u.Path}, nil
	default:
		return nil, fmt.Errorf("unsupported output scheme %q", scheme)
	}
}
