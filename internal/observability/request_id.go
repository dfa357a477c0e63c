package observability

import (
	"context"

	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// NewRequestID mints a random (version 4) UUID.
func NewRequestID() string {
	return uuid.NewString()
}

// ParseRequestID returns id in canonical form when it is a UUID. Anything
// else (empty, truncated, or a free-form string a client made up) is rejected
// so that log fields stay uniform.
func ParseRequestID(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return parsed.String(), true
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
