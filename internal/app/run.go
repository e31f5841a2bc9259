package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/vk/msgfeatures/internal/ctxlog"
	"github.com/vk/msgfeatures/internal/dataset"
	"github.com/vk/msgfeatures/internal/feature"
	"github.com/vk/msgfeatures/internal/pipeline"
	"github.com/vk/msgfeatures/internal/resources"
	"github.com/vk/msgfeatures/internal/sink"
)

// Run loads the feature configuration and the dataset, computes the enabled
// features and writes the result to the configured output. Nothing is
// written unless every row succeeded.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		stop := a.startHealthcheckServer(ctx, a.config.HealthcheckPort)
		defer stop()
	}

	model, err := a.loader.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load feature configuration: %w", err)
	}
	names, err := a.registry.Validate(ctx, model.Enabled())
	if err != nil {
		return err
	}
	a.logger.Info("Features enabled.", "features", names)

	target, err := sink.Parse(a.config.Output, a.config.Sink)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(ctx, a.config.InputPath)
	if err != nil {
		return err
	}

	if err := a.Process(ctx, ds, names); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := ds.WriteParquet(&buf); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if err := target.Put(ctx, buf.Bytes()); err != nil {
		return err
	}

	a.logger.Info("🏁 Feature table written.", "output", target.String(), "rows", ds.Len(), "columns", len(ds.Names()))
	return nil
}

// Process computes names on ds in place. Only the resources the features
// need are built.
func (a *App) Process(ctx context.Context, ds *dataset.Dataset, names []feature.Name) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	res, err := resources.Build(ctx, a.registry.Capabilities(names), a.resources)
	if err != nil {
		return err
	}

	a.rowsDone.Store(0)
	a.rowsTotal.Store(int64(ds.Len()))
	b := pipeline.New(a.registry, res, pipeline.Options{
		BagOfWordsMaxAccuracy: a.config.BagOfWordsMaxAccuracy,
		ProgressEvery:         a.config.ProgressEvery,
		OnRow:                 func(done int) { a.rowsDone.Store(int64(done)) },
	})
	return b.Build(ctx, ds, names)
}
