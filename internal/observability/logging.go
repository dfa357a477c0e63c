package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogging tees Logger into the OTel log bridge so every zap entry is
// also exported over OTLP/HTTP. Call after InitLogger; stdout output stays.
func InitLogging(ctx context.Context) (func(context.Context) error, error) {
	exporter, err := otlploghttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create log exporter: %w", err)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	Logger = zap.New(zapcore.NewTee(Logger.Core(), newBridgeCore(provider)))

	return provider.Shutdown, nil
}

func newBridgeCore(provider *sdklog.LoggerProvider) zapcore.Core {
	opts := []otelzap.Option{otelzap.WithLoggerProvider(provider)}
	if service.Version != "" {
		opts = append(opts, otelzap.WithVersion(service.Version))
	}
	return otelzap.NewCore(ServiceName(), opts...)
}
