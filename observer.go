package zoomview

// GestureObserver receives gesture notifications from a Controller.
// All methods are optional in spirit: implementations that only care
// about a subset can leave the rest empty. Callbacks run synchronously
// on the event path, so they must not block.
type GestureObserver interface {
	// SingleTap fires when a single tap is confirmed, after the
	// double-tap window has passed.
	SingleTap()
	// DoubleTap fires on the release of a double tap, before any
	// double-tap zoom is applied.
	DoubleTap()
	// Zoom fires when the zooming state flips: zooming is true while
	// the scale is growing, false while it shrinks. scaleFactor is the
	// current scale relative to the start state.
	Zoom(zooming bool, scaleFactor float64)
}

// Alignment identifies one edge of the viewport for bounds
// notifications.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignTop
	AlignBottom
)

// String returns the edge name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignBottom:
		return "bottom"
	}
	return "unknown"
}

// EdgeDistances reports how far each displayed image edge sits from the
// corresponding viewport edge, in viewport units. Positive values mean
// the image edge is inside the viewport, negative values mean it is
// past the viewport edge.
type EdgeDistances struct {
	Left, Top, Right, Bottom float64
}

// BoundsObserver receives displayed-bounds notifications from a
// Controller. Both callbacks fire from the single matrix commit path:
// DistancesChanged after every committed matrix change, and
// AlignmentChanged only when an edge's off-screen state transitions.
// offScreen is the fraction of the displayed dimension currently
// outside the viewport past that edge (0 when the edge moved back in).
type BoundsObserver interface {
	AlignmentChanged(edge Alignment, offScreen float64)
	DistancesChanged(d EdgeDistances)
}
