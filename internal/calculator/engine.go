package calculator

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is a pending binary operation. The zero value means no operator.
type Operator string

const (
	OpNone Operator = ""
	OpAdd  Operator = "add"
	OpSub  Operator = "sub"
	OpMul  Operator = "mul"
	OpDiv  Operator = "div"
)

var operatorSymbols = map[Operator]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

// Symbol returns the display glyph for op, or "" when op is not a known operator.
func (op Operator) Symbol() string {
	return operatorSymbols[op]
}

// Valid reports whether op is one of add, sub, mul or div.
func (op Operator) Valid() bool {
	_, ok := operatorSymbols[op]
	return ok
}

// ParseOperator accepts either an operator name ("add") or its symbol ("+").
func ParseOperator(s string) (Operator, error) {
	op := Operator(s)
	if op.Valid() {
		return op, nil
	}
	for candidate, symbol := range operatorSymbols {
		if symbol == s {
			return candidate, nil
		}
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Placeholder is shown on the history line when nothing is pending.
const Placeholder = " "

// ApplyOperator computes first <op> second. Division floors toward negative
// infinity. An unknown operator yields 0.
func ApplyOperator(first, second int64, op Operator) (int64, error) {
	switch op {
	case OpAdd:
		return first + second, nil
	case OpSub:
		return first - second, nil
	case OpMul:
		return first * second, nil
	case OpDiv:
		if second == 0 {
			return 0, fmt.Errorf("%w: %d / %d", ErrDivisionByZero, first, second)
		}
		return floorDiv(first, second), nil
	default:
		return 0, nil
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ParseOperand converts an operand slot to an integer. Empty or malformed
// values collapse to zero.
func ParseOperand(s string) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// State is the full integer calculator state. Every slot is string typed so
// that "not set" (empty) is distinct from zero.
type State struct {
	First    string   `json:"first"`
	Operator Operator `json:"operator"`
	Second   string   `json:"second"`
	Result   string   `json:"result"`
}

// NewState returns the cleared calculator.
func NewState() State {
	return State{Second: "0"}
}

// Display is what the calculator shows: a history line and a result line.
type Display struct {
	History string `json:"history"`
	Result  string `json:"result"`
}

// Display renders the two display lines for s.
func (s State) Display() Display {
	d := Display{History: Placeholder, Result: "0"}
	if s.First != "" && s.Operator != OpNone {
		d.History = s.First + s.Operator.Symbol()
	}
	switch {
	case s.Result != "":
		d.Result = s.Result
	case s.Second != "":
		d.Result = s.Second
	}
	return d
}

// Digit appends d to the operand being typed. Leading zeros of the existing
// entry are stripped on every keystroke.
func (s *State) Digit(d string) error {
	if len(d) != 1 || d[0] < '0' || d[0] > '9' {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, d)
	}
	s.Result = ""
	s.Second = strings.TrimLeft(s.Second, "0") + d
	return nil
}

// Press handles an operator button. The left operand is resolved from a
// pending operation first, then from a displayed result, then from the typed
// entry. A division by zero while chaining leaves the left operand empty and
// returns the error; the state change still happens.
func (s *State) Press(op Operator) error {
	if !op.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}

	var err error
	switch {
	case s.Operator != OpNone:
		s.First, err = s.evaluate()
	case s.Result != "":
		s.First = s.Result
	default:
		s.First = s.Second
	}

	s.Operator = op
	s.Second = "0"
	s.Result = ""
	return err
}

// Equals completes the pending operation, or promotes the typed entry to the
// result when nothing is pending. The result survives; every other slot is
// emptied.
func (s *State) Equals() error {
	var err error
	switch {
	case s.Operator != OpNone:
		s.Result, err = s.evaluate()
	case s.Second != "":
		s.Result = s.Second
	}

	s.First = ""
	s.Operator = OpNone
	s.Second = ""
	return err
}

// Clear resets s to NewState.
func (s *State) Clear() {
	*s = NewState()
}

func (s *State) evaluate() (string, error) {
	v, err := ApplyOperator(ParseOperand(s.First), ParseOperand(s.Second), s.Operator)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}
