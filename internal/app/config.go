package app

import (
	"errors"

	"github.com/vk/msgfeatures/internal/resources"
	"github.com/vk/msgfeatures/internal/sink"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // feature switches, .hcl or .json
	InputPath  string // messages, .csv or .json
	Output     string // local path, s3://bucket/key or pre-signed https URL

	BagOfWordsMaxAccuracy bool
	ProgressEvery         int

	Resources resources.Options
	Sink      sink.Options

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.ConfigPath == "" {
		errs = append(errs, errors.New("ConfigPath is a required configuration field and cannot be empty"))
	}
	if cfg.InputPath == "" {
		errs = append(errs, errors.New("InputPath is a required configuration field and cannot be empty"))
	}
	if cfg.Output == "" {
		errs = append(errs, errors.New("Output is a required configuration field and cannot be empty"))
	}
	if cfg.HealthcheckPort < 0 {
		errs = append(errs, errors.New("HealthcheckPort cannot be negative"))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &cfg, nil
}
