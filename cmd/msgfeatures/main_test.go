package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/msgfeatures/internal/config"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	configPath := filepath.Join(dir, "features.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"char_count": true, "emoji_count": true, "sentiment": false}`), 0600))
	inputPath := filepath.Join(dir, "messages.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("date,message\n2024-01-01,Ciao MONDO! 😀😀\n"), 0600))
	outputPath := filepath.Join(dir, "out", "features.parquet")

	args := []string{"-config", configPath, "-output", outputPath, "-log-format", "json", inputPath}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.NoError(t, err, out.String())
	require.FileExists(t, outputPath)
	require.Contains(t, out.String(), `"msg":"Features enabled."`)
}

func TestRun_MalformedConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	configPath := filepath.Join(dir, "features.hcl")
	require.NoError(t, os.WriteFile(configPath, []byte("char_count = {\n"), 0600))
	inputPath := filepath.Join(dir, "messages.csv")
	require.NoError(t, os.WriteFile(inputPath, []byte("message\nciao\n"), 0600))
	outputPath := filepath.Join(dir, "out.parquet")

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, []string{"-c", configPath, "-o", outputPath, inputPath})

	// --- Assert ---
	require.ErrorIs(t, err, config.ErrMalformed)
	require.NoFileExists(t, outputPath)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
