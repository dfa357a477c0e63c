package volume

import "fmt"

// Apply dispatches one edit onto s.
func (s *State) Apply(e Event) error {
	switch e.Type {
	case EventDimension:
		return s.ChangeDimension(e.Key, e.Value)
	case EventShape:
		return s.ChangeShape(e.Shape)
	case EventClear:
		s.Clear()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
}
