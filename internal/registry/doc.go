// Package registry provides the central "glue" for the feature system.
//
// The Registry maps the feature names used in configuration files (e.g.
// "char_count") to the compiled Go functions that compute them, together with
// the kind of value each produces and the resources it needs. Modules
// register themselves at startup; the set is then fixed for the lifetime of
// the application.
//
// Configured names are validated against the registry before any resource
// is loaded, so a typo in the configuration fails fast instead of after the
// language models have been paid for.
package registry
