package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func withService(t *testing.T, s Service) {
	t.Helper()
	old := service
	SetService(s)
	t.Cleanup(func() { service = old })
}

func TestServiceNamePrecedence(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")

	withService(t, Service{})
	if got := ServiceName(); got != DefaultServiceName {
		t.Fatalf("expected %q, got %q", DefaultServiceName, got)
	}

	withService(t, Service{Name: "volumes-api"})
	if got := ServiceName(); got != "volumes-api" {
		t.Fatalf("expected configured name, got %q", got)
	}

	t.Setenv("OTEL_SERVICE_NAME", "relabelled")
	if got := ServiceName(); got != "relabelled" {
		t.Fatalf("expected env override, got %q", got)
	}
}

func TestNewResourceCarriesServiceIdentity(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	t.Setenv("OTEL_RESOURCE_ATTRIBUTES", "")
	withService(t, Service{Name: "awsomemath", Version: "1.2.3", Environment: "staging"})

	res, err := newResource(context.Background())
	if err != nil {
		t.Fatalf("newResource: %v", err)
	}

	want := map[string]string{
		string(semconv.ServiceNameKey):           "awsomemath",
		string(semconv.ServiceVersionKey):        "1.2.3",
		string(semconv.DeploymentEnvironmentKey): "staging",
	}
	got := map[string]string{}
	for _, kv := range res.Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("expected %s=%q, got %q", k, v, got[k])
		}
	}
}

func TestPrometheusHandlerExposesBuildInfo(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	withService(t, Service{Version: "1.2.3", Environment: "test"})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	PrometheusHandler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	want := `awsomemath_build_info{environment="test",service="awsomemath",version="1.2.3"} 1`
	if !strings.Contains(body, want) {
		t.Fatalf("expected %q in metrics output", want)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Fatal("expected Go runtime collector output")
	}
}
