package observability

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewRequestIDIsRandomUUID(t *testing.T) {
	id := NewRequestID()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected valid UUID, got %q: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected version 4 UUID, got version %d", parsed.Version())
	}
	if other := NewRequestID(); other == id {
		t.Fatalf("expected distinct ids, got %q twice", id)
	}
}

func TestParseRequestID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{name: "canonical", in: valid, want: valid, wantOK: true},
		{name: "upper case is normalised", in: strings.ToUpper(valid), want: valid, wantOK: true},
		{name: "empty", in: "", wantOK: false},
		{name: "free form", in: "calc-session-7", wantOK: false},
		{name: "truncated", in: valid[:20], wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseRequestID(tc.in)
			if ok != tc.wantOK {
				t.Fatalf("expected ok=%v, got %v", tc.wantOK, ok)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		want := uuid.NewString()
		got := RequestIDFromContext(ContextWithRequestID(context.Background(), want))
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if got := RequestIDFromContext(context.Background()); got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})

	t.Run("foreign key of the same name", func(t *testing.T) {
		type otherKey string
		ctx := context.WithValue(context.Background(), otherKey("request_id"), "calc-1")
		if got := RequestIDFromContext(ctx); got != "" {
			t.Fatalf("expected empty string, got %q", got)
		}
	})
}
