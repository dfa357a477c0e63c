package observability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InitMetrics pushes OTel instruments (the calculator and volume meters)
// over OTLP/HTTP. Domain packages must create their instruments after this
// returns so they bind to the new provider.
func InitMetrics(ctx context.Context) (func(context.Context) error, error) {
	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

// NewPrometheusRegistry builds the pull-side registry: Go runtime and process
// collectors plus an awsomemath_build_info gauge labelled with the service
// identity.
func NewPrometheusRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()

	buildInfo := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "awsomemath",
		Name:      "build_info",
		Help:      "Always 1; labels carry the running version and environment.",
	}, []string{"service", "version", "environment"})
	buildInfo.WithLabelValues(ServiceName(), service.Version, service.Environment).Set(1)

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo,
	)
	return reg
}

// PrometheusHandler serves a fresh registry from NewPrometheusRegistry.
func PrometheusHandler() http.Handler {
	return promhttp.HandlerFor(NewPrometheusRegistry(), promhttp.HandlerOpts{})
}
