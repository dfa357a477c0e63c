package calculator

// BinaryRequest is the JSON body for the single-operation endpoints.
type BinaryRequest struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

// BinaryResponse is the JSON response for the single-operation endpoints.
type BinaryResponse struct {
	Operation Operator `json:"operation"`
	A         int64    `json:"a"`
	B         int64    `json:"b"`
	Result    int64    `json:"result"`
}

// PressRequest is the JSON body for POST /calculator/press. A nil State
// starts from a cleared calculator.
type PressRequest struct {
	State *State `json:"state,omitempty"`
	Key   Key    `json:"key"`
}

// PressResponse carries the next state and what the calculator shows.
type PressResponse struct {
	State   State   `json:"state"`
	Display Display `json:"display"`
	Warning string  `json:"warning,omitempty"`
}

// SequenceRequest is the JSON body for POST /calculator/sequence.
type SequenceRequest struct {
	State *State `json:"state,omitempty"`
	Keys  []Key  `json:"keys"`
}

// SequenceStep records the display after one replayed key.
type SequenceStep struct {
	Key     Key     `json:"key"`
	Display Display `json:"display"`
	Warning string  `json:"warning,omitempty"`
}

// SequenceResponse is the JSON response for POST /calculator/sequence.
type SequenceResponse struct {
	State   State          `json:"state"`
	Display Display        `json:"display"`
	Steps   []SequenceStep `json:"steps"`
}

func startState(s *State) State {
	if s == nil {
		return NewState()
	}
	return *s
}
