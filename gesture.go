package zoomview

// ScaleHandler receives pinch gesture callbacks from a ScaleDetector.
//
// ScaleBegin is called once when a second pointer goes down. Returning
// false ignores the rest of the gesture. Scale is called for every move
// while the pinch is in progress; returning true accepts the reported
// span so the next factor is measured relative to it. ScaleEnd is
// called when the pinch ends, before any remaining single-pointer
// events are processed.
type ScaleHandler interface {
	ScaleBegin(d *ScaleDetector) bool
	Scale(d *ScaleDetector) bool
	ScaleEnd(d *ScaleDetector)
}

// ScaleDetector classifies a pointer stream into pinch gestures. It
// tracks the focal point (midpoint of all active pointers) and the
// gesture span, and reports incremental scale factors to its handler.
//
// The detector is intentionally dumb about what a scale means: it only
// measures span ratios. Clamping against a scale range is the transform
// controller's job.
type ScaleDetector struct {
	handler ScaleHandler

	focus      Point
	span       float64
	prevSpan   float64
	pointers   int
	inProgress bool
}

// NewScaleDetector creates a detector reporting to handler.
func NewScaleDetector(handler ScaleHandler) *ScaleDetector {
	return &ScaleDetector{handler: handler}
}

// Focus returns the focal point of the most recent event. While a
// single pointer is down this is the pointer position, which doubles as
// the pan anchor.
func (d *ScaleDetector) Focus() Point {
	return d.focus
}

// ScaleFactor returns the incremental scale factor since the last
// accepted event: currentSpan / previousSpan. It returns 1 when no
// pinch is in progress.
func (d *ScaleDetector) ScaleFactor() float64 {
	if !d.inProgress || d.prevSpan <= 0 {
		return 1
	}
	return d.span / d.prevSpan
}

// InProgress reports whether a pinch gesture is currently active.
func (d *ScaleDetector) InProgress() bool {
	return d.inProgress
}

// OnTouch feeds one pointer event to the detector.
func (d *ScaleDetector) OnTouch(ev PointerEvent) {
	count := ev.PointerCount()
	if count > 0 {
		d.focus = ev.Focus()
		d.span = span(ev.Points, d.focus)
	}

	switch ev.Phase {
	case PhaseDown, PhaseMove:
		switch {
		case count >= 2 && !d.inProgress:
			d.prevSpan = d.span
			if d.handler == nil || d.handler.ScaleBegin(d) {
				d.inProgress = true
			}
		case count < 2 && d.inProgress:
			d.end()
		case d.inProgress && count != d.pointers:
			// A pointer joined or left: the span is now measured over a
			// different pointer set. Re-anchor instead of reporting the
			// definition jump as a scale step.
			d.prevSpan = d.span
		case d.inProgress && ev.Phase == PhaseMove:
			accepted := true
			if d.handler != nil {
				accepted = d.handler.Scale(d)
			}
			if accepted {
				d.prevSpan = d.span
			}
		}
		d.pointers = count
	case PhaseUp, PhaseCancel:
		if d.inProgress {
			d.end()
		}
		d.prevSpan = 0
		d.span = 0
		d.pointers = 0
	}
}

func (d *ScaleDetector) end() {
	d.inProgress = false
	if d.handler != nil {
		d.handler.ScaleEnd(d)
	}
}

// span is twice the average pointer distance from the focal point, so
// for the common two-finger pinch it equals the distance between the
// two pointers.
func span(points []Point, focus Point) float64 {
	if len(points) < 2 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Distance(focus)
	}
	return 2 * sum / float64(len(points))
}
