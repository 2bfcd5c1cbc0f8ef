package zoomview

import "time"

const (
	// doubleTapTimeout is the longest pause between two taps that still
	// counts as a double tap. A single tap is only confirmed after this
	// much time passes without a second tap.
	doubleTapTimeout = 300 * time.Millisecond

	// tapSlop is the maximum pointer travel, in viewport units, for a
	// touch sequence to still count as a tap.
	tapSlop = 20.0
)

// TapHandler receives tap callbacks from a TapDetector.
//
// SingleTapUp fires immediately when a tap-shaped sequence ends; it may
// later turn out to be the first half of a double tap. SingleTapConfirmed
// fires once the double-tap window expires without a second tap.
// DoubleTap fires on the release of the second tap.
type TapHandler interface {
	SingleTapUp(p Point)
	SingleTapConfirmed(p Point)
	DoubleTap(p Point)
}

// TapDetector classifies a pointer stream into single and double taps.
// Time comes from the event timestamps; the pending single-tap
// confirmation is resolved cooperatively via Tick rather than a timer,
// matching the widget's single-threaded model.
type TapDetector struct {
	handler TapHandler

	downAt        Point
	moved         bool
	multi         bool
	pendingDouble bool

	awaitingConfirm bool
	lastTapAt       Point
	lastTapTime     time.Time
}

// NewTapDetector creates a detector reporting to handler.
func NewTapDetector(handler TapHandler) *TapDetector {
	return &TapDetector{handler: handler}
}

// OnTouch feeds one pointer event to the detector.
func (d *TapDetector) OnTouch(ev PointerEvent) {
	switch ev.Phase {
	case PhaseDown:
		if ev.PointerCount() > 1 {
			d.multi = true
			d.pendingDouble = false
			d.awaitingConfirm = false
			return
		}
		p := ev.Focus()
		if d.awaitingConfirm &&
			ev.Time.Sub(d.lastTapTime) <= doubleTapTimeout &&
			p.Distance(d.lastTapAt) <= tapSlop {
			d.pendingDouble = true
			d.awaitingConfirm = false
		}
		d.downAt = p
		d.moved = false
		d.multi = false
	case PhaseMove:
		if ev.PointerCount() > 1 {
			d.multi = true
		}
		if !d.moved && ev.PointerCount() == 1 && ev.Focus().Distance(d.downAt) > tapSlop {
			d.moved = true
		}
	case PhaseUp:
		if d.multi || d.moved {
			d.pendingDouble = false
			d.awaitingConfirm = false
			return
		}
		if d.pendingDouble {
			d.pendingDouble = false
			if d.handler != nil {
				d.handler.DoubleTap(d.downAt)
			}
			return
		}
		d.lastTapAt = d.downAt
		d.lastTapTime = ev.Time
		d.awaitingConfirm = true
		if d.handler != nil {
			d.handler.SingleTapUp(d.downAt)
		}
	case PhaseCancel:
		d.pendingDouble = false
		d.awaitingConfirm = false
		d.moved = false
		d.multi = false
	}
}

// DoubleTapPending reports whether the current touch sequence began as
// the second tap of a double tap and has not resolved yet.
func (d *TapDetector) DoubleTapPending() bool {
	return d.pendingDouble
}

// Tick resolves a pending single tap once the double-tap window has
// expired. The hosting layer should call it from its frame callback.
func (d *TapDetector) Tick(now time.Time) {
	if d.awaitingConfirm && now.Sub(d.lastTapTime) > doubleTapTimeout {
		d.awaitingConfirm = false
		if d.handler != nil {
			d.handler.SingleTapConfirmed(d.lastTapAt)
		}
	}
}
