package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"awsomemath/internal/observability"
	"awsomemath/internal/testutil"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecovererReturns500AndLogs(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := testutil.ExecuteRequest(httptest.NewRequest(http.MethodGet, "/calculator/press", nil), h)
	testutil.CheckResponseCode(t, http.StatusInternalServerError, w.Code)

	if len(logs.All()) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(logs.All()))
	}
	if got := logs.All()[0].Message; got != "panic recovered" {
		t.Fatalf("expected %q, got %q", "panic recovered", got)
	}
}

func TestRealIP(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
		want   string
	}{
		{name: "forwarded for", header: "X-Forwarded-For", value: "203.0.113.7, 10.0.0.1", want: "203.0.113.7"},
		{name: "real ip", header: "X-Real-IP", value: "203.0.113.8", want: "203.0.113.8"},
		{name: "none", want: "192.0.2.1:1234"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			if tc.header != "" {
				req.Header.Set(tc.header, tc.value)
			}
			testutil.ExecuteRequest(req, h)

			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRateLimiterKeysByHost(t *testing.T) {
	h := RateLimiter(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		return testutil.ExecuteRequest(req, h).Code
	}

	if code := send("198.51.100.1:1000"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := send("198.51.100.1:2000"); code != http.StatusTooManyRequests {
		t.Fatalf("expected same host on another port to be limited, got %d", code)
	}
	if code := send("198.51.100.2:1000"); code != http.StatusOK {
		t.Fatalf("expected a different host to pass, got %d", code)
	}
}
