// Package testutil holds shared helpers for integration tests: a harness that
// runs the whole app against files in a temporary directory, fake resource
// loaders, HCL fixture writers and Parquet readers.
package testutil
