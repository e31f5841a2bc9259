// Package resources builds the language models, vocabularies and classifiers
// needed by the enabled features, and nothing else.
//
// Features declare what they need as Capabilities. Build walks the union of
// those capabilities and asks a Loader for each one exactly once, so a run
// that only computes englishness never pays for the Italian model.
package resources
