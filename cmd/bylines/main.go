// Package main is the entry point for bylines. It wires all dependencies
// using samber/do v2, seeds the demonstration catalog, prints the derived
// views, runs health checks and flushes telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/samber/do/v2"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/bylines/internal/adapters/report"
	"github.com/jsamuelsen11/bylines/internal/app"
	"github.com/jsamuelsen11/bylines/internal/domain/publishing"
	"github.com/jsamuelsen11/bylines/internal/platform/config"
	"github.com/jsamuelsen11/bylines/internal/platform/health"
	"github.com/jsamuelsen11/bylines/internal/platform/logging"
	"github.com/jsamuelsen11/bylines/internal/platform/telemetry"
	"github.com/jsamuelsen11/bylines/internal/ports"
)

const otelShutdownTimeout = 5 * time.Second

var errUnhealthy = errors.New("catalog is unhealthy")

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load(config.ProfileFromEnv())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	ctx = logging.WithLogger(ctx, logger)

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, stdout)

	svc, err := do.Invoke[ports.PublishingService](injector)
	if err != nil {
		return fmt.Errorf("resolving publishing service: %w", err)
	}
	renderer, err := do.Invoke[*report.Renderer](injector)
	if err != nil {
		return fmt.Errorf("resolving renderer: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(app.NewConsistencyChecker(svc))

	if err := runScenario(ctx, svc, renderer); err != nil {
		return err
	}

	results := registry.CheckAll(ctx)
	health.LogResults(ctx, logger, results)
	if failed := health.Unhealthy(results); len(failed) > 0 {
		return fmt.Errorf("%w: %v", errUnhealthy, failed)
	}
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{tracer: tp, meter: mp, metrics: metrics}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, stdout io.Writer) {
	do.Provide(injector, func(_ do.Injector) (*publishing.Catalog, error) {
		return publishing.NewCatalog(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PublishingService, error) {
		catalog := do.MustInvoke[*publishing.Catalog](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		logger := do.MustInvoke[*slog.Logger](i)
		return app.NewPublishingService(catalog, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*report.Renderer, error) {
		return report.NewRenderer(stdout, cfg.Output.Format)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}
