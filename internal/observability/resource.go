package observability

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// DefaultServiceName is used when neither SetService nor OTEL_SERVICE_NAME
// names the process.
const DefaultServiceName = "awsomemath"

// Service identifies this process on logs, traces and metrics.
type Service struct {
	Name        string
	Version     string
	Environment string
}

var service = Service{Name: DefaultServiceName}

// SetService records the identity used by every Init* call that follows.
// An empty Name keeps DefaultServiceName.
func SetService(s Service) {
	if s.Name == "" {
		s.Name = DefaultServiceName
	}
	service = s
}

// ServiceName is the effective service name. OTEL_SERVICE_NAME wins over the
// configured one so collectors can relabel a deployment without a rebuild.
func ServiceName() string {
	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		return name
	}
	return service.Name
}

func newResource(ctx context.Context) (*resource.Resource, error) {
	opts := []resource.Option{
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(semconv.ServiceName(ServiceName())),
	}
	if service.Version != "" {
		opts = append(opts, resource.WithAttributes(semconv.ServiceVersion(service.Version)))
	}
	if service.Environment != "" {
		opts = append(opts, resource.WithAttributes(semconv.DeploymentEnvironment(service.Environment)))
	}

	res, err := resource.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("build otel resource: %w", err)
	}
	return res, nil
}
