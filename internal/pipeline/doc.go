// Package pipeline turns a message dataset into a feature table.
//
// Build runs the enabled features in three stages. bag_of_words, which needs
// the whole corpus, is vectorized first and appended as columns "0".."n-1".
// Every other feature is then evaluated row by row, in configuration order,
// with a fresh feature.Row per message so that the Italian analysis is
// shared by the features of one row and never leaks into the next. Finally
// message_composition is expanded into one column per POS tag and the
// columns that are not features are dropped.
package pipeline
