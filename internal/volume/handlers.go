package volume

import (
	"errors"
	"net/http"

	"awsomemath/internal/handlers"
	"awsomemath/internal/observability"

	"github.com/go-chi/render"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("volume")

// ListShapes handles GET /volumes/shapes.
func ListShapes(w http.ResponseWriter, r *http.Request) {
	shapes := Shapes()
	out := make([]ShapeInfo, len(shapes))
	for i, s := range shapes {
		out[i] = shapeInfo(s)
	}
	handlers.WriteJSON(w, r, http.StatusOK, out)
}

// Compute handles POST /volumes/compute. Unlike the event endpoint it
// surfaces validation failures: 404 for an unknown shape, 422 for a missing
// dimension.
func Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "volume.compute",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req ComputeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.String("volume.shape", req.Shape))

	shape, err := Lookup(req.Shape)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "compute", err.Error(), err, http.StatusNotFound, w)
		return
	}

	v, err := ComputeVolume(shape.Name, req.Dimensions)
	if err != nil {
		validationCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("shape", shape.Name)))
		observability.RecordError(ctx, span, logger, errorCounter, "compute", err.Error(), err, http.StatusUnprocessableEntity, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("shape", shape.Name))
	computeCounter.Add(ctx, 1, attrs)
	resultGauge.Record(ctx, v, attrs)

	span.SetAttributes(attribute.Float64("volume.result", v))
	span.SetStatus(codes.Ok, "")

	logger.Info("volume computed",
		zap.String("shape", shape.Name),
		zap.Float64("volume", v),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, r, http.StatusOK, ComputeResponse{
		Shape:   shape.Name,
		Volume:  v,
		Display: FormatVolume(v),
		Formula: shape.FormulaText,
	})
}

// HandleEvent handles POST /volumes/events. Missing dimensions degrade to a
// result of 0 and still answer 200.
func HandleEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "volume.event",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req EventRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "event", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	state := NewState()
	if req.State != nil {
		state = *req.State
	}

	span.SetAttributes(
		attribute.String("volume.event.type", req.Event.Type),
		attribute.String("volume.shape", state.Shape),
	)

	err := state.Apply(req.Event)
	switch {
	case IsValidationError(err):
		validationCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("shape", state.Shape)))
		span.AddEvent("validation.failed", trace.WithAttributes(attribute.String("error", err.Error())))
		logger.Debug("volume validation failed, showing 0",
			zap.String("shape", state.Shape),
			zap.Error(err),
			zap.String("request_id", requestID),
		)
	case errors.Is(err, ErrUnknownShape):
		observability.RecordError(ctx, span, logger, errorCounter, "event", err.Error(), err, http.StatusNotFound, w)
		return
	case err != nil:
		observability.RecordError(ctx, span, logger, errorCounter, "event", err.Error(), err, http.StatusBadRequest, w)
		return
	default:
		attrs := metric.WithAttributes(attribute.String("shape", state.Shape))
		computeCounter.Add(ctx, 1, attrs)
		resultGauge.Record(ctx, state.Result, attrs)
	}

	display := state.Display()
	span.SetAttributes(attribute.String("volume.display", display.Result))
	span.SetStatus(codes.Ok, "")

	logger.Info("volume event handled",
		zap.String("event", req.Event.Type),
		zap.String("shape", state.Shape),
		zap.String("display", display.Result),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, r, http.StatusOK, EventResponse{State: state, Display: display})
}

