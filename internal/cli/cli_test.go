package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := Parse([]string{
		"-config", "features.json",
		"-o", "s3://bucket/out.parquet",
		"-bow-max-accuracy",
		"-italian-model", "models/it",
		"-sentiment-lexicon", "sentiment.tsv",
		"-s3-endpoint", "http://127.0.0.1:9000",
		"-s3-path-style",
		"-log-level", "DEBUG",
		"messages.csv",
	}, &out)
	require.NoError(t, err)
	require.False(t, exit)

	assert.Equal(t, "features.json", cfg.ConfigPath)
	assert.Equal(t, "messages.csv", cfg.InputPath)
	assert.Equal(t, "s3://bucket/out.parquet", cfg.Output)
	assert.True(t, cfg.BagOfWordsMaxAccuracy)
	assert.Equal(t, "models/it", cfg.Resources.ItalianModelDir)
	assert.Equal(t, "sentiment.tsv", cfg.Resources.SentimentLexicon)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Sink.S3Endpoint)
	assert.True(t, cfg.Sink.S3PathStyle)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined"},
		{name: "bad log format", args: []string{"-config", "f.json", "-o", "out", "-log-format", "xml", "in.csv"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"-config", "f.json", "-o", "out", "-log-level", "loud", "in.csv"}, wantMsg: "invalid log-level"},
		{name: "missing output", args: []string{"-config", "f.json", "in.csv"}, wantMsg: "Output is a required"},
		{name: "missing config", args: []string{"-o", "out", "in.csv"}, wantMsg: "ConfigPath is a required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			_, _, err := Parse(tc.args, &out)
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_HelpAndNoArgs(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {}} {
		var out bytes.Buffer
		cfg, exit, err := Parse(args, &out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "Usage:")
	}
}
