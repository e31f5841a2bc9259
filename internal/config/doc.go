// Package config defines the format-agnostic feature configuration model and
// the Loader interface that concrete file formats implement.
//
// The model is an ordered list of feature switches. Only enabled names are
// handed to the pipeline; validation against the compiled feature set is the
// registry's job, not the loader's.
package config
