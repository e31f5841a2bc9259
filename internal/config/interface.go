package config

import (
	"context"
	"errors"
)

// ErrMalformed is returned (wrapped) when a configuration file cannot be
// parsed or holds a value that is not a boolean switch.
var ErrMalformed = errors.New("malformed feature configuration")

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the feature switches stored at path.
	Load(ctx context.Context, path string) (*Model, error)
}
