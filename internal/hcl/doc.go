// Package hcl provides the concrete implementation of config.Loader. Feature
// switch files are read with the HCL toolkit, either in native syntax
// (`char_count = true`) or in JSON (`{"char_count": true}`), and every value is
// bound to a Go bool through go-cty.
package hcl
