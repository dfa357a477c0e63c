package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"awsomemath/internal/calculator"
	"awsomemath/internal/handlers"
	"awsomemath/internal/observability"
	"awsomemath/internal/pages"
	"awsomemath/internal/volume"
)

// Options tune the router. The zero value serves every route with CORS open
// to all origins and no rate limit.
type Options struct {
	Version            string
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(opts Options) http.Handler {

	r := chi.NewRouter()

	r.Use(RealIP)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(Recoverer)

	origins := opts.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", observability.RequestIDHeader, "traceparent", "tracestate"},
		ExposedHeaders: []string{observability.RequestIDHeader, APIVersionHeader},
		MaxAge:         300,
	}))

	if opts.RateLimitRPS > 0 {
		r.Use(RateLimiter(opts.RateLimitRPS, opts.RateLimitBurst))
	}
	r.Use(SecureHeaders)
	if opts.Version != "" {
		r.Use(APIVersion(opts.Version))
	}

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	r.Get("/pages", pages.List)
	calculator.RegisterRoutes(r)
	volume.RegisterRoutes(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusNotFound, "the requested resource was not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, http.StatusMethodNotAllowed, "method not allowed for this resource")
	})

	return r
}
