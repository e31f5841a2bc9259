package testutil

import (
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/msgfeatures/internal/config"
)

// FeatureConfigHCL renders switches as a native HCL feature configuration,
// one `name = bool` attribute per switch, in order.
func FeatureConfigHCL(switches ...config.Switch) string {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, s := range switches {
		body.SetAttributeValue(s.Name, cty.BoolVal(s.Enabled))
	}
	return string(f.Bytes())
}

// On is shorthand for an enabled switch.
func On(name string) config.Switch {
	return config.Switch{Name: name, Enabled: true}
}

// Off is shorthand for a disabled switch.
func Off(name string) config.Switch {
	return config.Switch{Name: name, Enabled: false}
}
