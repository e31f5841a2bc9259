// Package nlp holds the linguistic building blocks used by the feature
// modules: the fixed Universal POS tag list, the token and document types
// returned by an Analyzer, vocabularies and the analyzers themselves.
//
// Two analyzers are provided. LexiconModel is loaded from a model directory
// of tab separated `form<TAB>TAG` files and is used for Italian. Prose wraps
// the English perceptron tagger of github.com/jdkato/prose and maps its Penn
// Treebank tags onto the universal set.
package nlp
