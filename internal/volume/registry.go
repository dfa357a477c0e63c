// Package volume holds the fixed table of solids and their volume formulas,
// plus the state a volume calculator keeps between edits.
package volume

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dimensions maps a dimension name to its numeric string as typed.
type Dimensions map[string]string

// Dimension names shared across shapes.
const (
	DimLength = "length"
	DimHeight = "height"
	DimWidth  = "width"
	DimRadius = "radius"
)

// Shape describes one solid. Shapes are immutable once the registry is built.
type Shape struct {
	Name        string
	Dimensions  []string
	FormulaText string
	Image       string
	Volume      func(Dimensions) (float64, error)
}

// DefaultShape is selected on start and after a clear.
const DefaultShape = "Cube"

var registry = []Shape{
	{
		Name:        "Cube",
		Dimensions:  []string{DimLength},
		FormulaText: "length * length * length",
		Image:       "cube.svg",
		Volume:      cubeVolume,
	},
	{
		Name:        "Sphere",
		Dimensions:  []string{DimRadius},
		FormulaText: "4/3 * pi * radius^3",
		Image:       "sphere.svg",
		Volume:      sphereVolume,
	},
	{
		Name:        "Cone",
		Dimensions:  []string{DimRadius, DimHeight},
		FormulaText: "(1/3) * pi * radius^2 * height",
		Image:       "cone.svg",
		Volume:      coneVolume,
	},
	{
		Name:        "Cylinder",
		Dimensions:  []string{DimRadius, DimHeight},
		FormulaText: "pi * radius^2 * height",
		Image:       "cylinder.svg",
		Volume:      cylinderVolume,
	},
}

var knownDimensions = map[string]struct{}{
	DimLength: {},
	DimHeight: {},
	DimWidth:  {},
	DimRadius: {},
}

// Shapes returns the registry in display order.
func Shapes() []Shape {
	out := make([]Shape, len(registry))
	copy(out, registry)
	return out
}

// Names returns the shape names in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a shape by its exact name.
func Lookup(name string) (Shape, error) {
	for _, s := range registry {
		if s.Name == name {
			return s, nil
		}
	}
	return Shape{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// ComputeVolume evaluates the named shape's formula against dims.
func ComputeVolume(shape string, dims Dimensions) (float64, error) {
	s, err := Lookup(shape)
	if err != nil {
		return 0, err
	}
	v, err := s.Volume(dims)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %s", ErrVolumeOutOfRange, s.Name)
	}
	return v, nil
}

func cubeVolume(d Dimensions) (float64, error) {
	l, err := dimension("Cube", d, DimLength)
	if err != nil {
		return 0, err
	}
	return l * l * l, nil
}

func sphereVolume(d Dimensions) (float64, error) {
	r, err := dimension("Sphere", d, DimRadius)
	if err != nil {
		return 0, err
	}
	return (4.0 / 3.0) * math.Pi * r * r * r, nil
}

func coneVolume(d Dimensions) (float64, error) {
	r, err := dimension("Cone", d, DimRadius)
	if err != nil {
		return 0, err
	}
	h, err := dimension("Cone", d, DimHeight)
	if err != nil {
		return 0, err
	}
	return (1.0 / 3.0) * math.Pi * r * r * h, nil
}

func cylinderVolume(d Dimensions) (float64, error) {
	r, err := dimension("Cylinder", d, DimRadius)
	if err != nil {
		return 0, err
	}
	h, err := dimension("Cylinder", d, DimHeight)
	if err != nil {
		return 0, err
	}
	return math.Pi * r * r * h, nil
}

// dimension reads one dimension. Zero and non-finite values count as missing.
func dimension(shape string, d Dimensions, name string) (float64, error) {
	raw, ok := d[name]
	if !ok {
		return 0, &DimensionError{Shape: shape, Dimension: name}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &DimensionError{Shape: shape, Dimension: name}
	}
	return v, nil
}
