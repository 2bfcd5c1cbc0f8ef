package zoomview

import (
	"image"
	"time"
)

// View composes a Controller with the two gesture classifiers and an
// image surface, providing the per-event pipeline: it feeds each raw
// pointer event to the detectors, then applies their output as
// transform operations.
//
// The hosting layer owns a displayable surface and forwards raw input
// events to OnTouch; View never talks to a platform directly.
type View struct {
	ctrl  *Controller
	pinch *ScaleDetector
	taps  *TapDetector

	img       image.Image
	scaleType ScaleType
	enabled   bool

	last             Point
	prevPointerCount int
	scaleBy          float64
	lastTap          Point

	doubleTapDetected bool
	singleTapDetected bool
}

// New creates a View with the given viewport size in pixels.
// It returns ErrInvalidScaleRange when the configured scale range is
// unusable.
func New(width, height int, opts ...Option) (*View, error) {
	ctrl, err := NewController(opts...)
	if err != nil {
		return nil, err
	}
	v := &View{
		ctrl:      ctrl,
		scaleType: ScaleFitCenter,
		enabled:   true,
		scaleBy:   1,
	}
	v.pinch = NewScaleDetector(v)
	v.taps = NewTapDetector(v)
	ctrl.SetViewport(float64(width), float64(height))
	return v, nil
}

// Controller returns the underlying transform controller, for
// configuration changes and direct operation calls.
func (v *View) Controller() *Controller { return v.ctrl }

// Image returns the displayed image, or nil when none is set.
func (v *View) Image() image.Image { return v.img }

// SetImage replaces the displayed content and re-derives the base
// matrix from the current scale type, invalidating the start state.
// Pass nil to clear the content.
func (v *View) SetImage(img image.Image) {
	v.img = img
	if img == nil {
		v.ctrl.SetContentSize(0, 0)
		v.ctrl.SetBaseMatrix(Identity())
		return
	}
	b := img.Bounds()
	v.ctrl.SetContentSize(float64(b.Dx()), float64(b.Dy()))
	v.applyBaseMatrix()
}

// ScaleType returns the current scale type.
func (v *View) ScaleType() ScaleType { return v.scaleType }

// SetScaleType changes how the content is fitted and re-derives the
// base matrix, invalidating the start state.
func (v *View) SetScaleType(st ScaleType) {
	v.scaleType = st
	v.applyBaseMatrix()
}

// SetViewport resizes the viewport and re-derives the base matrix.
func (v *View) SetViewport(width, height int) {
	v.ctrl.SetViewport(float64(width), float64(height))
	v.applyBaseMatrix()
}

// Enabled reports whether the view accepts input.
func (v *View) Enabled() bool { return v.enabled }

// SetEnabled enables or disables input handling. Disabling restores the
// pre-zoom base matrix.
func (v *View) SetEnabled(enabled bool) {
	v.enabled = enabled
	if !enabled {
		v.applyBaseMatrix()
	}
}

// Reset returns the transform to the start state, animated or not.
func (v *View) Reset(animate bool) { v.ctrl.Reset(animate) }

func (v *View) applyBaseMatrix() {
	if v.img == nil {
		return
	}
	b := v.img.Bounds()
	v.ctrl.SetBaseMatrix(baseMatrix(v.scaleType,
		v.ctrl.viewportW, v.ctrl.viewportH,
		float64(b.Dx()), float64(b.Dy())))
}

// OnTouch processes one pointer event through the gesture pipeline and
// reports whether the event was consumed.
func (v *View) OnTouch(ev PointerEvent) bool {
	if !v.enabled || v.img == nil || !(v.ctrl.Zoomable() || v.ctrl.Translatable()) {
		return false
	}
	v.ctrl.BeginSession()

	// Resolve an expired single-tap window on the event path too, so a
	// host that only ticks while animating cannot leave the view
	// suppressed.
	v.taps.Tick(ev.Time)

	count := ev.PointerCount()
	v.pinch.OnTouch(ev)
	v.taps.OnTouch(ev)
	focus := v.pinch.Focus()

	if v.taps.DoubleTapPending() {
		// The sequence is the second tap of a double tap; it is no
		// longer a candidate single tap.
		v.singleTapDetected = false
	}

	if v.ctrl.DoubleTapToZoom() && v.doubleTapDetected {
		v.doubleTapDetected = false
		v.singleTapDetected = false
		v.ctrl.DoubleTap(v.lastTap)
		v.prevPointerCount = count
		return true
	}

	if !v.singleTapDetected {
		switch {
		case ev.Phase == PhaseDown || count != v.prevPointerCount:
			// New sequence or a finger joined/left: re-anchor the pan
			// so the content does not jump.
			v.last = focus
		case ev.Phase == PhaseMove:
			v.ctrl.ApplyTranslate(focus.Sub(v.last))
			v.ctrl.ApplyScale(v.scaleBy, focus)
			v.last = focus
		}
		if ev.Phase == PhaseUp || ev.Phase == PhaseCancel {
			v.scaleBy = 1
			v.ctrl.Release()
		}
	}

	v.prevPointerCount = count
	return true
}

// Tick drives the cooperative parts of the widget: pending single-tap
// confirmation and any in-flight convergence animation. It reports
// whether an animation is still running, so hosts can keep scheduling
// frames only while needed.
func (v *View) Tick(now time.Time) bool {
	v.taps.Tick(now)
	return v.ctrl.Tick(now)
}

// ScaleBegin implements ScaleHandler.
func (v *View) ScaleBegin(*ScaleDetector) bool {
	v.ctrl.SetPinchActive(true)
	return true
}

// Scale implements ScaleHandler: it clamps the incremental factor
// against the scale range and records the zooming direction.
func (v *View) Scale(d *ScaleDetector) bool {
	v.scaleBy = v.ctrl.ClampScaleFactor(d.ScaleFactor())
	v.ctrl.NoteZooming(v.scaleBy >= 1)
	return true
}

// ScaleEnd implements ScaleHandler.
func (v *View) ScaleEnd(*ScaleDetector) {
	v.scaleBy = 1
	v.ctrl.SetPinchActive(false)
}

// SingleTapUp implements TapHandler.
func (v *View) SingleTapUp(p Point) {
	v.singleTapDetected = true
	v.lastTap = p
}

// SingleTapConfirmed implements TapHandler.
func (v *View) SingleTapConfirmed(p Point) {
	v.singleTapDetected = false
	v.lastTap = p
	v.ctrl.emitSingleTap()
}

// DoubleTap implements TapHandler.
func (v *View) DoubleTap(p Point) {
	v.doubleTapDetected = true
	v.singleTapDetected = false
	v.lastTap = p
	v.ctrl.emitDoubleTap()
}
