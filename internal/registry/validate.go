package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/resources"
)

// ErrUnknownFeature is returned when a configured feature is not registered.
var ErrUnknownFeature = errors.New("unknown feature")

// Validate checks every configured name against the registry and returns
// them as feature names in the same order. All unknown names are reported
// together.
func (r *Registry) Validate(ctx context.Context, names []string) ([]feature.Name, error) {
	logger := ctxlog.FromContext(ctx)

	out := make([]feature.Name, 0, len(names))
	var unknown []string
	for _, n := range names {
		name := feature.Name(n)
		if _, ok := r.features[name]; !ok {
			unknown = append(unknown, n)
			continue
		}
		out = append(out, name)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, strings.Join(unknown, ", "))
	}
	logger.Debug("Feature configuration validated.", "features", len(out))
	return out, nil
}

// Capabilities returns the union of the resources needed by names. Unknown
// names contribute nothing.
func (r *Registry) Capabilities(names []feature.Name) resources.Capabilities {
	var caps resources.Capabilities
	for _, name := range names {
		if f, ok := r.features[name]; ok {
			caps |= f.Needs
		}
	}
	return caps
}
