package zoomview

import "time"

// Phase identifies where a pointer event sits in a touch sequence.
type Phase uint8

const (
	// PhaseDown is delivered when a pointer goes down, including
	// secondary pointers joining an in-progress sequence.
	PhaseDown Phase = iota
	// PhaseMove is delivered while any pointer moves.
	PhaseMove
	// PhaseUp is delivered when the last pointer leaves the surface.
	PhaseUp
	// PhaseCancel aborts the sequence without a release, for example
	// when the hosting layer takes over the gesture.
	PhaseCancel
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	case PhaseCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent is one event in the raw pointer stream the hosting layer
// forwards to a View. Points holds the positions of all active pointers
// in viewport coordinates; it is empty for the final up/cancel event.
type PointerEvent struct {
	Phase  Phase
	Points []Point
	Time   time.Time
}

// PointerCount returns the number of active pointers.
func (e PointerEvent) PointerCount() int {
	return len(e.Points)
}

// Focus returns the midpoint of the active pointers, or the zero point
// when no pointers are active. For a single pointer this is the pointer
// itself; for a pinch it is the gesture's focal point.
func (e PointerEvent) Focus() Point {
	if len(e.Points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range e.Points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(e.Points)))
}
