package volume

// ShapeInfo is the JSON view of a registry entry.
type ShapeInfo struct {
	Name        string   `json:"name"`
	Dimensions  []string `json:"dimensions"`
	FormulaText string   `json:"formula"`
	Image       string   `json:"image"`
}

// ComputeRequest is the JSON body for POST /volumes/compute.
type ComputeRequest struct {
	Shape      string     `json:"shape"`
	Dimensions Dimensions `json:"dimensions"`
}

// ComputeResponse is the JSON response for POST /volumes/compute.
type ComputeResponse struct {
	Shape   string  `json:"shape"`
	Volume  float64 `json:"volume"`
	Display string  `json:"display"`
	Formula string  `json:"formula"`
}

// Event types accepted by POST /volumes/events.
const (
	EventDimension = "dimension"
	EventShape     = "shape"
	EventClear     = "clear"
)

// Event is one edit made in a volume calculator.
type Event struct {
	Type  string `json:"type"`
	Key   string `json:"key,omitempty"`
	Value string `json:"value,omitempty"`
	Shape string `json:"shape,omitempty"`
}

// EventRequest is the JSON body for POST /volumes/events. A nil State starts
// from NewState.
type EventRequest struct {
	State *State `json:"state,omitempty"`
	Event Event  `json:"event"`
}

// EventResponse carries the next state and its rendering.
type EventResponse struct {
	State   State   `json:"state"`
	Display Display `json:"display"`
}

func shapeInfo(s Shape) ShapeInfo {
	return ShapeInfo{
		Name:        s.Name,
		Dimensions:  append([]string(nil), s.Dimensions...),
		FormulaText: s.FormulaText,
		Image:       s.Image,
	}
}
