package volume

import (
	"fmt"
	"maps"
)

// State is what a volume calculator keeps between edits. Dimensions persist
// across shape switches; only the keys of the active shape are consulted.
type State struct {
	Shape      string     `json:"shape"`
	Dimensions Dimensions `json:"dimensions"`
	Result     float64    `json:"result"`
}

// DefaultDimensions returns a fresh copy of the dimensions used on start and clear.
func DefaultDimensions() Dimensions {
	return Dimensions{
		DimLength: "1",
		DimHeight: "1",
		DimWidth:  "1",
		DimRadius: "1",
	}
}

// NewState returns a calculator showing the default shape with every
// dimension set to 1.
func NewState() State {
	s := State{}
	s.Clear()
	return s
}

// Clear restores the default shape and dimensions and recomputes.
func (s *State) Clear() {
	s.Shape = DefaultShape
	s.Dimensions = DefaultDimensions()
	_ = s.recompute()
}

// ChangeShape switches the active shape and recomputes with the current
// dimensions. An unknown shape leaves s untouched.
func (s *State) ChangeShape(name string) error {
	if _, err := Lookup(name); err != nil {
		return err
	}
	s.Shape = name
	return s.recompute()
}

// ChangeDimension stores value under key and recomputes. A validation error
// is returned for logging only: the result has already been set to 0.
func (s *State) ChangeDimension(key, value string) error {
	if _, ok := knownDimensions[key]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, key)
	}
	next := maps.Clone(s.Dimensions)
	if next == nil {
		next = Dimensions{}
	}
	next[key] = value
	s.Dimensions = next
	return s.recompute()
}

func (s *State) recompute() error {
	v, err := ComputeVolume(s.Shape, s.Dimensions)
	if err != nil {
		s.Result = 0
		return err
	}
	s.Result = v
	return nil
}

// Field is one labelled input of the active shape.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Display is everything a presentation layer needs to draw the calculator.
type Display struct {
	Shape   string  `json:"shape"`
	Formula string  `json:"formula"`
	Result  string  `json:"result"`
	Image   string  `json:"image"`
	Fields  []Field `json:"fields"`
}

// Display renders s. Unset fields show "0".
func (s State) Display() Display {
	shape, err := Lookup(s.Shape)
	if err != nil {
		return Display{Shape: s.Shape, Result: FormatVolume(0)}
	}
	fields := make([]Field, len(shape.Dimensions))
	for i, name := range shape.Dimensions {
		v := s.Dimensions[name]
		if v == "" {
			v = "0"
		}
		fields[i] = Field{Name: name, Value: v}
	}
	return Display{
		Shape:   shape.Name,
		Formula: shape.FormulaText + "=",
		Result:  FormatVolume(s.Result),
		Image:   shape.Image,
		Fields:  fields,
	}
}
