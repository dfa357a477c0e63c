package calculator

import "fmt"

// Key is one calculator button: a digit, an operator name, "equals" or "clear".
type Key string

const (
	KeyEquals Key = "equals"
	KeyClear  Key = "clear"
)

// IsDigit reports whether k is a single 0-9 digit.
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// Apply dispatches one key press onto s.
func (s *State) Apply(k Key) error {
	switch {
	case k.IsDigit():
		return s.Digit(string(k))
	case k == KeyEquals:
		return s.Equals()
	case k == KeyClear:
		s.Clear()
		return nil
	}

	op, err := ParseOperator(string(k))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownKey, k)
	}
	return s.Press(op)
}
