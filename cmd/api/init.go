package main

import (
	"context"
	"errors"

	"awsomemath/internal/calculator"
	"awsomemath/internal/config"
	"awsomemath/internal/observability"
	"awsomemath/internal/volume"
)

// initTelemetry starts the enabled OTLP pipelines and registers every
// domain's instruments. The returned func shuts all pipelines down.
func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	start := func(enabled bool, init func(context.Context) (func(context.Context) error, error)) error {
		if !enabled {
			return nil
		}
		fn, err := init(ctx)
		if err != nil {
			return err
		}
		shutdowns = append(shutdowns, fn)
		return nil
	}

	if err := start(cfg.Traces, observability.InitTracing); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	if err := start(cfg.Metrics, observability.InitMetrics); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	if err := start(cfg.Logs, observability.InitLogging); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	if err := initMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	return shutdown, nil
}

// initMetrics creates each domain's instruments on the current meter
// provider. Add new domain InitMetrics calls here as the project grows.
func initMetrics() error {
	if err := calculator.InitMetrics(); err != nil {
		return err
	}
	return volume.InitMetrics()
}
