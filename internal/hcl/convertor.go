package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter binds evaluated HCL attribute values to Go values.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Bool evaluates attr without any variables or functions in scope and binds
// the result to a Go bool. Strings such as "true" are accepted through the
// usual cty conversion rules; null, lists and objects are not.
func (c *Converter) Bool(ctx context.Context, attr *hcl.Attribute) (bool, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return false, fmt.Errorf("feature %q: %w", attr.Name, diags)
	}
	if val.IsNull() {
		return false, fmt.Errorf("feature %q: value must not be null", attr.Name)
	}

	converted, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("feature %q: cannot convert %s to bool: %w", attr.Name, val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.Bool) {
		ctxlog.FromContext(ctx).Debug("Implicitly converted feature switch.",
			"feature", attr.Name,
			"from", val.Type().FriendlyName(),
		)
	}

	var out bool
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return false, fmt.Errorf("feature %q: %w", attr.Name, err)
	}
	return out, nil
}
