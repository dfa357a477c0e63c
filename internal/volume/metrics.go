package volume

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	computeCounter    metric.Int64Counter
	validationCounter metric.Int64Counter
	errorCounter      metric.Int64Counter
	resultGauge       metric.Float64Gauge
)

// InitMetrics registers the volume calculator's OTel instruments.
func InitMetrics() error {
	meter := otel.Meter("volume")

	var err error

	computeCounter, err = meter.Int64Counter("volume.computations.total",
		metric.WithDescription("Total number of volume computations"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		return fmt.Errorf("creating computation counter: %w", err)
	}

	validationCounter, err = meter.Int64Counter("volume.validation_failures.total",
		metric.WithDescription("Computations rejected because a dimension was missing"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return fmt.Errorf("creating validation counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("volume.errors.total",
		metric.WithDescription("Total number of failed volume requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	resultGauge, err = meter.Float64Gauge("volume.last_result",
		metric.WithDescription("The last computed volume"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("creating result gauge: %w", err)
	}

	return nil
}
