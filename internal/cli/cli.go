package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/msgfeatures/internal/app"
	"github.com/vk/msgfeatures/internal/resources"
	"github.com/vk/msgfeatures/internal/sink"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envDefault returns the value of the environment variable key, or def.
func envDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("msgfeatures", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
msgfeatures - builds per-message feature tables for authorship models.

Usage:
  msgfeatures [options] -config FEATURES -output TARGET [INPUT]

Arguments:
  INPUT
    Path to the messages dataset (.csv or .json) with a 'message' column.

Output targets:
  out/features.parquet, s3://bucket/key.parquet or a pre-signed https URL.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the feature configuration file (.hcl or .json).")
	cFlag := flagSet.String("c", "", "Path to the feature configuration file (shorthand).")
	inputFlag := flagSet.String("input", "", "Path to the messages dataset.")
	outputFlag := flagSet.String("output", "", "Output target for the Parquet file.")
	oFlag := flagSet.String("o", "", "Output target for the Parquet file (shorthand).")
	maxAccuracyFlag := flagSet.Bool("bow-max-accuracy", false, "Size the bag of words to the corpus vocabulary instead of 1024 columns.")
	progressFlag := flagSet.Int("progress-every", 1000, "Log progress every N rows.")

	italianModelFlag := flagSet.String("italian-model", envDefault("MSGFEATURES_ITALIAN_MODEL", ""), "Directory with the Italian lexicon (*.tsv) and optional vocab.txt.")
	englishVocabFlag := flagSet.String("english-vocab", envDefault("MSGFEATURES_ENGLISH_VOCAB", ""), "English word list, path or http(s) URL.")
	sentimentLexiconFlag := flagSet.String("sentiment-lexicon", "", "Offline sentiment lexicon; overrides the inference endpoint.")
	sentimentEndpointFlag := flagSet.String("sentiment-endpoint", "", "Inference endpoint base URL for sentiment.")
	sentimentModelFlag := flagSet.String("sentiment-model", "", "Inference model for sentiment.")
	emotionLexiconFlag := flagSet.String("emotion-lexicon", "", "Offline emotion lexicon; overrides the inference endpoint.")
	emotionEndpointFlag := flagSet.String("emotion-endpoint", "", "Inference endpoint base URL for emotion.")
	emotionModelFlag := flagSet.String("emotion-model", "", "Inference model for emotion.")
	tokenFlag := flagSet.String("inference-token", envDefault("MSGFEATURES_INFERENCE_TOKEN", ""), "Bearer token for the inference endpoint.")

	s3EndpointFlag := flagSet.String("s3-endpoint", envDefault("MSGFEATURES_S3_ENDPOINT", ""), "S3 endpoint URL; empty means AWS.")
	s3RegionFlag := flagSet.String("s3-region", envDefault("MSGFEATURES_S3_REGION", sink.DefaultS3Region), "S3 region.")
	s3AccessKeyFlag := flagSet.String("s3-access-key", envDefault("MSGFEATURES_S3_ACCESS_KEY", ""), "S3 access key.")
	s3SecretKeyFlag := flagSet.String("s3-secret-key", envDefault("MSGFEATURES_S3_SECRET_KEY", ""), "S3 secret key.")
	s3PathStyleFlag := flagSet.Bool("s3-path-style", false, "Use path-style S3 addressing (MinIO).")

	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	configPath := firstNonEmpty(*configFlag, *cFlag)
	outputTarget := firstNonEmpty(*outputFlag, *oFlag)
	input := *inputFlag
	if input == "" && flagSet.NArg() > 0 {
		input = flagSet.Arg(0)
	}

	if configPath == "" && input == "" && outputTarget == "" {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, ok := app.ParseLevel(logLevel); !ok {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath:            configPath,
		InputPath:             input,
		Output:                outputTarget,
		BagOfWordsMaxAccuracy: *maxAccuracyFlag,
		ProgressEvery:         *progressFlag,
		Resources: resources.Options{
			ItalianModelDir:   *italianModelFlag,
			EnglishVocabulary: *englishVocabFlag,
			SentimentLexicon:  *sentimentLexiconFlag,
			SentimentEndpoint: *sentimentEndpointFlag,
			SentimentModel:    *sentimentModelFlag,
			EmotionLexicon:    *emotionLexiconFlag,
			EmotionEndpoint:   *emotionEndpointFlag,
			EmotionModel:      *emotionModelFlag,
			InferenceToken:    *tokenFlag,
		},
		Sink: sink.Options{
			S3Endpoint:  *s3EndpointFlag,
			S3Region:    *s3RegionFlag,
			S3AccessKey: *s3AccessKeyFlag,
			S3SecretKey: *s3SecretKeyFlag,
			S3PathStyle: *s3PathStyleFlag,
		},
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		HealthcheckPort: *healthPortFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config.ConfigPath, "input", config.InputPath)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
