package volume

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"awsomemath/internal/observability"
	"awsomemath/internal/testutil"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	require.NoError(t, InitMetrics())

	r := chi.NewRouter()
	RegisterRoutes(r)
	return r, logs
}

func TestListShapes(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/volumes/shapes", nil)
	w := testutil.ExecuteRequest(req, r)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var shapes []ShapeInfo
	testutil.DecodeJSONBody(t, w.Body, &shapes)
	require.Len(t, shapes, 4)
	assert.Equal(t, "Cube", shapes[0].Name)
	assert.Equal(t, "4/3 * pi * radius^3", shapes[1].FormulaText)
	assert.Equal(t, []string{DimRadius, DimHeight}, shapes[2].Dimensions)
}

func TestComputeHandler(t *testing.T) {
	r, logs := newTestRouter(t)

	w := testutil.PostJSON(t, r, "/volumes/compute", ComputeRequest{
		Shape:      "Cube",
		Dimensions: Dimensions{DimLength: "10"},
	})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp ComputeResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, "Cube", resp.Shape)
	assert.Equal(t, 1000.0, resp.Volume)
	assert.Equal(t, "1000", resp.Display)
	assert.Equal(t, "length * length * length", resp.Formula)

	assert.Equal(t, 1, logs.FilterMessage("volume computed").Len())
}

func TestComputeHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"unknown shape", ComputeRequest{Shape: "Prism", Dimensions: Dimensions{DimLength: "1"}}, http.StatusNotFound},
		{"missing dimension", ComputeRequest{Shape: "Cone", Dimensions: Dimensions{DimRadius: "1"}}, http.StatusUnprocessableEntity},
		{"zero dimension", ComputeRequest{Shape: "Cube", Dimensions: Dimensions{DimLength: "0"}}, http.StatusUnprocessableEntity},
		{"infinite dimension", ComputeRequest{Shape: "Cube", Dimensions: Dimensions{DimLength: "Inf"}}, http.StatusUnprocessableEntity},
		{"overflowing volume", ComputeRequest{Shape: "Cube", Dimensions: Dimensions{DimLength: "1e200"}}, http.StatusUnprocessableEntity},
		{"malformed body", "not an object", http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, logs := newTestRouter(t)

			w := testutil.PostJSON(t, r, "/volumes/compute", tc.body)
			testutil.CheckResponseCode(t, tc.status, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, 1, logs.FilterField(zap.String("operation", "compute")).Len())
		})
	}
}

func TestEventHandlerStartsFromDefaultState(t *testing.T) {
	r, _ := newTestRouter(t)

	w := testutil.PostJSON(t, r, "/volumes/events", EventRequest{
		Event: Event{Type: EventDimension, Key: DimLength, Value: "3"},
	})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp EventResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, "Cube", resp.State.Shape)
	assert.Equal(t, 27.0, resp.State.Result)
	assert.Equal(t, "27", resp.Display.Result)
	assert.Equal(t, "length * length * length=", resp.Display.Formula)
}

func TestEventHandlerContinuesClientState(t *testing.T) {
	r, _ := newTestRouter(t)

	state := State{Shape: "Cube", Dimensions: Dimensions{DimRadius: "10"}, Result: 1}
	w := testutil.PostJSON(t, r, "/volumes/events", EventRequest{
		State: &state,
		Event: Event{Type: EventShape, Shape: "Sphere"},
	})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp EventResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, "Sphere", resp.State.Shape)
	assert.Equal(t, "4189", resp.Display.Result)
}

func TestEventHandlerValidationDegradesToZero(t *testing.T) {
	r, logs := newTestRouter(t)

	w := testutil.PostJSON(t, r, "/volumes/events", EventRequest{
		Event: Event{Type: EventDimension, Key: DimLength, Value: ""},
	})
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp EventResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)
	assert.Equal(t, 0.0, resp.State.Result)
	assert.Equal(t, "0", resp.Display.Result)
	assert.Equal(t, 1, logs.FilterMessage("volume validation failed, showing 0").Len())
}

func TestEventHandlerNonFiniteDegradesToZero(t *testing.T) {
	for _, value := range []string{"Inf", "1e200", "-1e400"} {
		t.Run(value, func(t *testing.T) {
			r, _ := newTestRouter(t)

			w := testutil.PostJSON(t, r, "/volumes/events", EventRequest{
				Event: Event{Type: EventDimension, Key: DimLength, Value: value},
			})
			testutil.CheckResponseCode(t, http.StatusOK, w.Code)

			var resp EventResponse
			testutil.DecodeJSONBody(t, w.Body, &resp)
			assert.Equal(t, 0.0, resp.State.Result)
			assert.Equal(t, "0", resp.Display.Result)
			assert.Equal(t, value, resp.State.Dimensions[DimLength])
		})
	}
}

func TestEventHandlerErrors(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		status int
	}{
		{"unknown shape", Event{Type: EventShape, Shape: "Prism"}, http.StatusNotFound},
		{"unknown dimension", Event{Type: EventDimension, Key: "depth", Value: "1"}, http.StatusBadRequest},
		{"unknown event", Event{Type: "spin"}, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := newTestRouter(t)

			w := testutil.PostJSON(t, r, "/volumes/events", EventRequest{Event: tc.event})
			testutil.CheckResponseCode(t, tc.status, w.Code)
		})
	}
}
