package volume

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDimension is returned when a required dimension is absent,
	// empty, not a finite number, or zero.
	ErrMissingDimension = errors.New("missing dimension")

	// ErrVolumeOutOfRange is returned when finite dimensions overflow float64.
	ErrVolumeOutOfRange = errors.New("volume out of range")

	// ErrUnknownShape is returned for shape names outside the registry.
	ErrUnknownShape = errors.New("unknown shape")

	// ErrUnknownDimension is returned when a dimension key is not used by any shape.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrUnknownEvent is returned for event types other than dimension, shape and clear.
	ErrUnknownEvent = errors.New("unknown event")
)

// DimensionError names the shape and dimension that failed validation.
type DimensionError struct {
	Shape     string
	Dimension string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s %s", e.Shape, ErrMissingDimension, e.Dimension)
}

func (e *DimensionError) Unwrap() error {
	return ErrMissingDimension
}

// IsValidationError reports whether err came from dimension validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingDimension) || errors.Is(err, ErrVolumeOutOfRange)
}
