package calculator

import (
	"errors"
	"fmt"
	"net/http"
	"time"

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

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// ---------------------------------------------------------------------------
// Handlers: single operations
// ---------------------------------------------------------------------------

// Add handles POST /calculator/add
func Add(w http.ResponseWriter, r *http.Request) { handleBinaryOp(w, r, OpAdd) }

// Subtract handles POST /calculator/sub
func Subtract(w http.ResponseWriter, r *http.Request) { handleBinaryOp(w, r, OpSub) }

// Multiply handles POST /calculator/mul
func Multiply(w http.ResponseWriter, r *http.Request) { handleBinaryOp(w, r, OpMul) }

// Divide handles POST /calculator/div. Division floors; a zero divisor is a 400.
func Divide(w http.ResponseWriter, r *http.Request) { handleBinaryOp(w, r, OpDiv) }

// handleBinaryOp is the shared implementation for the single-operation endpoints.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, op Operator) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)
	opName := string(op)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req BinaryRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Int64("calculator.operand.a", req.A),
		attribute.Int64("calculator.operand.b", req.B),
	)

	start := time.Now()
	result, err := ApplyOperator(req.A, req.B, op)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Int64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Int64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Int64("a", req.A),
		zap.Int64("b", req.B),
		zap.Int64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, r, http.StatusOK, BinaryResponse{
		Operation: op,
		A:         req.A,
		B:         req.B,
		Result:    result,
	})
}

// ---------------------------------------------------------------------------
// Handlers: key presses
// ---------------------------------------------------------------------------

// Press handles POST /calculator/press. The client owns the state: it sends
// the current tuple plus one key and receives the next tuple and display.
func Press(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.press",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req PressRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	state := startState(req.State)
	span.SetAttributes(attribute.String("calculator.key", string(req.Key)))

	start := time.Now()
	err := state.Apply(req.Key)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	resp := PressResponse{State: state, Display: state.Display()}

	switch {
	case errors.Is(err, ErrDivisionByZero):
		// Degraded, not failed: the display falls back and the client keeps going.
		span.RecordError(err)
		errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "press")))
		logger.Warn("division by zero during key press",
			zap.String("key", string(req.Key)),
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		resp.Warning = err.Error()
	case err != nil:
		observability.RecordError(ctx, span, logger, errorCounter, "press", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "press"))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	recordResult(ctx, state, attrs)

	span.SetAttributes(
		attribute.String("calculator.display.history", resp.Display.History),
		attribute.String("calculator.display.result", resp.Display.Result),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator key handled",
		zap.String("key", string(req.Key)),
		zap.String("display", resp.Display.Result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, r, http.StatusOK, resp)
}

// Sequence handles POST /calculator/sequence. It replays a list of keys onto
// one state, with a child span per key.
func Sequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.sequence",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req SequenceRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Keys) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "no keys provided", fmt.Errorf("keys array is empty"), http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(attribute.Int("sequence.keys_count", len(req.Keys)))

	state := startState(req.State)
	steps := make([]SequenceStep, 0, len(req.Keys))

	for i, key := range req.Keys {
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.sequence.step.%d", i),
			trace.WithAttributes(
				attribute.Int("sequence.step.index", i),
				attribute.String("sequence.step.key", string(key)),
			),
		)

		stepStart := time.Now()
		err := state.Apply(key)
		stepElapsed := float64(time.Since(stepStart).Microseconds()) / 1000.0

		step := SequenceStep{Key: key, Display: state.Display()}

		if err != nil && !errors.Is(err, ErrDivisionByZero) {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			span.RecordError(err)
			span.SetStatus(codes.Error, fmt.Sprintf("failed at step %d", i))

			errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "sequence")))

			logger.Error("sequence step failed",
				zap.Int("step", i),
				zap.String("key", string(key)),
				zap.Error(err),
				zap.String("request_id", requestID),
			)

			handlers.WriteError(w, http.StatusBadRequest, fmt.Sprintf("step %d: %v", i, err))
			return
		}
		if err != nil {
			stepSpan.RecordError(err)
			step.Warning = err.Error()
		}

		attrs := metric.WithAttributes(attribute.String("operation", "sequence"))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.SetAttributes(attribute.String("sequence.step.display", step.Display.Result))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Debug("sequence step completed",
			zap.Int("step", i),
			zap.String("key", string(key)),
			zap.String("display", step.Display.Result),
			zap.Float64("duration_ms", stepElapsed),
		)

		steps = append(steps, step)
	}

	display := state.Display()
	recordResult(ctx, state, metric.WithAttributes(attribute.String("operation", "sequence")))

	span.AddEvent("sequence.complete", trace.WithAttributes(
		attribute.String("display", display.Result),
		attribute.Int("total_steps", len(req.Keys)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator sequence completed",
		zap.Int("steps", len(req.Keys)),
		zap.String("display", display.Result),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, r, http.StatusOK, SequenceResponse{
		State:   state,
		Display: display,
		Steps:   steps,
	})
}
