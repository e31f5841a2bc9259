package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/msgfeatures/internal/config"
	"github.com/vk/msgfeatures/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	converter *Converter
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{converter: NewConverter()}
}

// Load parses the feature switch file at path. Files ending in .json are read
// with the HCL JSON parser; anything else is treated as native HCL.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to access feature configuration %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", config.ErrMalformed, path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s must only contain name = bool pairs: %w", config.ErrMalformed, path, diags)
	}

	model := &config.Model{Switches: make([]config.Switch, 0, len(attrs))}
	for _, attr := range orderedAttributes(attrs) {
		enabled, err := l.converter.Bool(ctx, attr)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", config.ErrMalformed, path, err)
		}
		model.Switches = append(model.Switches, config.Switch{Name: attr.Name, Enabled: enabled})
	}

	logger.Debug("HCL loading complete.", "switches", len(model.Switches), "enabled", len(model.Enabled()))
	return model, nil
}

// orderedAttributes returns attrs sorted by their position in the source, so
// the switch order matches what the user wrote.
func orderedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NameRange.Start.Byte < out[j].NameRange.Start.Byte
	})
	return out
}
