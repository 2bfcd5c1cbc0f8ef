package zoomview

import "time"

// Controller is the transform controller at the heart of the widget: it
// owns the current affine transform, the configuration and the start
// state, and evolves the transform per input operation while enforcing
// the configured constraints.
//
// The hosting View feeds it classified gesture output; it can also be
// driven directly by anything that produces scale factors and
// translation deltas (the demo maps mouse wheel steps to ApplyScale).
//
// A Controller is not safe for concurrent use. All methods must be
// called from the same goroutine that delivers input events.
type Controller struct {
	cfg config

	viewportW, viewportH float64
	contentW, contentH   float64

	matrix Matrix
	bounds Rect

	hasStart     bool
	startMatrix  Matrix
	calcMinScale float64
	calcMaxScale float64

	// scaleFactor is the current scale relative to the start state.
	scaleFactor float64
	pinchActive bool
	zooming     bool

	anim *animation

	gesture   GestureObserver
	boundsObs BoundsObserver
	offScreen [4]bool
}

// NewController creates a controller with the given options.
// It returns ErrInvalidScaleRange when the configured scale range is
// unusable; configuration errors are reported here, never deferred to
// first use.
func NewController(opts ...Option) (*Controller, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:          cfg,
		matrix:       Identity(),
		scaleFactor:  1,
		calcMinScale: cfg.minScale,
		calcMaxScale: cfg.maxScale,
	}, nil
}

// SetViewport sets the viewport size in viewport units and invalidates
// the start state.
func (c *Controller) SetViewport(width, height float64) {
	c.viewportW = width
	c.viewportH = height
	c.InvalidateStart()
}

// SetContentSize sets the intrinsic size of the displayed content and
// invalidates the start state.
func (c *Controller) SetContentSize(width, height float64) {
	c.contentW = width
	c.contentH = height
	c.InvalidateStart()
}

// SetBaseMatrix replaces the current transform, discarding any running
// animation, and invalidates the start state. The hosting layer calls
// this when the content or scale type changes and a fresh pre-zoom
// matrix has been computed.
func (c *Controller) SetBaseMatrix(m Matrix) {
	c.anim = nil
	c.InvalidateStart()
	c.setMatrix(m)
}

// InvalidateStart discards the captured start state. The next
// interaction captures a fresh one.
func (c *Controller) InvalidateStart() {
	c.hasStart = false
}

// BeginSession captures the start state if none is present. The start
// state is the reset target and the basis of the scale range: the
// effective bounds are minScale and maxScale times the start scale.
func (c *Controller) BeginSession() {
	if c.hasStart {
		return
	}
	c.hasStart = true
	c.startMatrix = c.matrix
	c.calcMinScale = c.cfg.minScale * c.startMatrix.ScaleX()
	c.calcMaxScale = c.cfg.maxScale * c.startMatrix.ScaleX()
	c.scaleFactor = 1
	Logger().Debug("captured start state",
		"scale", c.startMatrix.ScaleX(),
		"minScale", c.calcMinScale,
		"maxScale", c.calcMaxScale)
}

// Matrix returns the current transform.
func (c *Controller) Matrix() Matrix { return c.matrix }

// Bounds returns the displayed image bounds under the current
// transform: intrinsic content size times scale, offset by translation.
func (c *Controller) Bounds() Rect { return c.bounds }

// ScaleFactor returns the current scale relative to the start state.
func (c *Controller) ScaleFactor() float64 { return c.scaleFactor }

// StartMatrix returns the captured start transform and whether one is
// currently valid.
func (c *Controller) StartMatrix() (Matrix, bool) { return c.startMatrix, c.hasStart }

// Animating reports whether a convergence animation is in flight.
func (c *Controller) Animating() bool { return c.anim != nil }

// SetGestureObserver installs the optional gesture observer.
// Pass nil to remove it.
func (c *Controller) SetGestureObserver(o GestureObserver) { c.gesture = o }

// SetBoundsObserver installs the optional bounds observer.
// Pass nil to remove it.
func (c *Controller) SetBoundsObserver(o BoundsObserver) { c.boundsObs = o }

// SetPinchActive marks whether a pinch gesture is in progress. Edge
// restriction is bypassed while a pinch is active so it does not fight
// the concurrent scale-about-focus operation.
func (c *Controller) SetPinchActive(active bool) { c.pinchActive = active }

// PinchActive reports whether a pinch gesture is in progress.
func (c *Controller) PinchActive() bool { return c.pinchActive }

// Zoomable reports whether pinch zooming is enabled.
func (c *Controller) Zoomable() bool { return c.cfg.zoomable }

// SetZoomable enables or disables pinch zooming.
func (c *Controller) SetZoomable(zoomable bool) { c.cfg.zoomable = zoomable }

// Translatable reports whether panning is enabled.
func (c *Controller) Translatable() bool { return c.cfg.translatable }

// SetTranslatable enables or disables panning.
func (c *Controller) SetTranslatable(translatable bool) { c.cfg.translatable = translatable }

// RestrictBounds reports whether edge restriction is enabled.
func (c *Controller) RestrictBounds() bool { return c.cfg.restrictBounds }

// SetRestrictBounds enables or disables edge restriction.
func (c *Controller) SetRestrictBounds(restrict bool) { c.cfg.restrictBounds = restrict }

// AnimateOnReset reports whether reset animates or snaps.
func (c *Controller) AnimateOnReset() bool { return c.cfg.animateOnReset }

// SetAnimateOnReset selects whether reset animates or snaps.
func (c *Controller) SetAnimateOnReset(animate bool) { c.cfg.animateOnReset = animate }

// AutoCenter reports whether re-centering is enabled.
func (c *Controller) AutoCenter() bool { return c.cfg.autoCenter }

// SetAutoCenter enables or disables re-centering.
func (c *Controller) SetAutoCenter(autoCenter bool) { c.cfg.autoCenter = autoCenter }

// DoubleTapToZoom reports whether double-tap zooming is enabled.
func (c *Controller) DoubleTapToZoom() bool { return c.cfg.doubleTapToZoom }

// SetDoubleTapToZoom enables or disables double-tap zooming.
func (c *Controller) SetDoubleTapToZoom(enabled bool) { c.cfg.doubleTapToZoom = enabled }

// AutoResetMode returns the release policy.
func (c *Controller) AutoResetMode() AutoResetMode { return c.cfg.autoResetMode }

// SetAutoResetMode sets the release policy.
func (c *Controller) SetAutoResetMode(mode AutoResetMode) { c.cfg.autoResetMode = mode }

// ScaleRange returns the configured scale range.
func (c *Controller) ScaleRange() (minScale, maxScale float64) {
	return c.cfg.minScale, c.cfg.maxScale
}

// SetScaleRange replaces the scale range and invalidates the start
// state. It returns ErrInvalidScaleRange and leaves the configuration
// unchanged when the new range is unusable.
func (c *Controller) SetScaleRange(minScale, maxScale float64) error {
	next := c.cfg
	next.minScale = minScale
	next.maxScale = maxScale
	if err := next.validate(); err != nil {
		return err
	}
	c.cfg = next
	c.InvalidateStart()
	return nil
}

// DoubleTapToZoomScaleFactor returns the double-tap target scale.
func (c *Controller) DoubleTapToZoomScaleFactor() float64 {
	return c.cfg.doubleTapToZoomScaleFactor
}

// SetDoubleTapToZoomScaleFactor sets the double-tap target scale,
// clamped into the configured scale range.
func (c *Controller) SetDoubleTapToZoomScaleFactor(factor float64) {
	if factor > c.cfg.maxScale {
		factor = c.cfg.maxScale
	}
	if factor < c.cfg.minScale {
		factor = c.cfg.minScale
	}
	c.cfg.doubleTapToZoomScaleFactor = factor
}

// ClampScaleFactor clamps an incremental scale factor so the projected
// scale (current scale times factor) lands exactly on the range
// boundary instead of overshooting it.
func (c *Controller) ClampScaleFactor(factor float64) float64 {
	current := c.matrix.ScaleX()
	if current == 0 {
		return factor
	}
	projected := current * factor
	if projected < c.calcMinScale {
		return c.calcMinScale / current
	}
	if projected > c.calcMaxScale {
		return c.calcMaxScale / current
	}
	return factor
}

// ApplyScale applies an incremental scale factor about the given focus
// point. The factor is clamped so the resulting scale stays within
// [minScale*startScale, maxScale*startScale]; a clamped step lands
// exactly on the boundary. No-op when zooming is disabled.
func (c *Controller) ApplyScale(factor float64, focus Point) {
	if !c.cfg.zoomable {
		return
	}
	c.BeginSession()
	f := c.ClampScaleFactor(factor)
	c.setMatrix(c.matrix.ScaleAbout(f, f, focus))
}

// ApplyTranslate applies a pan delta. Translation is suppressed while
// the scale factor relative to start is at or under 1. When edge
// restriction is enabled and no pinch is in progress, an edge already
// inside the viewport cannot be dragged further inward (or, for content
// smaller than the viewport, further outward). Regardless of the
// restriction mode, the delta is hard-clamped so the displayed bounds
// cannot leave the viewport entirely in either axis.
func (c *Controller) ApplyTranslate(delta Point) {
	if !c.cfg.translatable {
		return
	}
	c.BeginSession()
	if c.scaleFactor <= 1 {
		return
	}
	dx := c.translationX(delta.X)
	dy := c.translationY(delta.Y)
	if dx == 0 && dy == 0 {
		return
	}
	c.setMatrix(c.matrix.Translated(dx, dy))
}

func (c *Controller) displayedWidth() float64  { return c.contentW * c.matrix.ScaleX() }
func (c *Controller) displayedHeight() float64 { return c.contentH * c.matrix.ScaleY() }

// translationX restricts and clamps a horizontal pan delta.
func (c *Controller) translationX(dx float64) float64 {
	if c.cfg.restrictBounds {
		dx = c.restrictedX(dx)
	}
	// Hard limit: never let the image travel an unbounded distance
	// offscreen.
	if c.bounds.Max.X+dx < 0 {
		dx = -c.bounds.Max.X
	} else if c.bounds.Min.X+dx > c.viewportW {
		dx = c.viewportW - c.bounds.Min.X
	}
	return dx
}

// restrictedX keeps horizontal edges pinned per the edge restriction
// policy: with the image at least as wide as the viewport, an edge
// already inside must not cross further inward; with a narrower image,
// an edge already outside must not be pushed further outside. A pinch
// in progress bypasses the restriction.
func (c *Controller) restrictedX(dx float64) float64 {
	b := c.bounds
	if c.displayedWidth() >= c.viewportW {
		if b.Min.X <= 0 && b.Min.X+dx > 0 && !c.pinchActive {
			return -b.Min.X
		}
		if b.Max.X >= c.viewportW && b.Max.X+dx < c.viewportW && !c.pinchActive {
			return c.viewportW - b.Max.X
		}
	} else if !c.pinchActive {
		if b.Min.X >= 0 && b.Min.X+dx < 0 {
			return -b.Min.X
		}
		if b.Max.X <= c.viewportW && b.Max.X+dx > c.viewportW {
			return c.viewportW - b.Max.X
		}
	}
	return dx
}

// translationY restricts and clamps a vertical pan delta.
func (c *Controller) translationY(dy float64) float64 {
	if c.cfg.restrictBounds {
		dy = c.restrictedY(dy)
	}
	if c.bounds.Max.Y+dy < 0 {
		dy = -c.bounds.Max.Y
	} else if c.bounds.Min.Y+dy > c.viewportH {
		dy = c.viewportH - c.bounds.Min.Y
	}
	return dy
}

// restrictedY is the vertical counterpart of restrictedX.
func (c *Controller) restrictedY(dy float64) float64 {
	b := c.bounds
	if c.displayedHeight() >= c.viewportH {
		if b.Min.Y <= 0 && b.Min.Y+dy > 0 && !c.pinchActive {
			return -b.Min.Y
		}
		if b.Max.Y >= c.viewportH && b.Max.Y+dy < c.viewportH && !c.pinchActive {
			return c.viewportH - b.Max.Y
		}
	} else if !c.pinchActive {
		if b.Min.Y >= 0 && b.Min.Y+dy < 0 {
			return -b.Min.Y
		}
		if b.Max.Y <= c.viewportH && b.Max.Y+dy > c.viewportH {
			return c.viewportH - b.Max.Y
		}
	}
	return dy
}

// Release applies the configured auto-reset policy after the last
// pointer leaves: compare the current scale against the start scale and
// either reset to the start state or re-center.
func (c *Controller) Release() {
	if !c.hasStart {
		return
	}
	current, start := c.matrix.ScaleX(), c.startMatrix.ScaleX()
	Logger().Debug("release", "mode", c.cfg.autoResetMode, "scale", current, "startScale", start)
	switch c.cfg.autoResetMode {
	case AutoResetUnder:
		if current <= start {
			c.Reset(c.cfg.animateOnReset)
		} else {
			c.center()
		}
	case AutoResetOver:
		if current >= start {
			c.Reset(c.cfg.animateOnReset)
		} else {
			c.center()
		}
	case AutoResetAlways:
		c.Reset(c.cfg.animateOnReset)
	case AutoResetNever:
		c.center()
	}
}

// DoubleTap performs the double-tap-to-zoom operation at the given tap
// point: a full reset when the scale has moved away from the start
// scale, otherwise an animated zoom to the configured target factor.
// Returns false (event not consumed) when double-tap zooming is
// disabled.
func (c *Controller) DoubleTap(at Point) bool {
	if !c.cfg.doubleTapToZoom {
		return false
	}
	c.BeginSession()
	if c.matrix.ScaleX() != c.startMatrix.ScaleX() {
		c.Reset(c.cfg.animateOnReset)
		return true
	}
	f := c.cfg.doubleTapToZoomScaleFactor
	c.animateTo(c.matrix.ScaleAbout(f, f, at))
	return true
}

// Reset returns the transform to the start state. With animate, the
// transform converges over the fixed animation duration; otherwise it
// snaps immediately.
func (c *Controller) Reset(animate bool) {
	if !c.hasStart {
		return
	}
	if animate {
		c.animateTo(c.startMatrix)
		return
	}
	c.anim = nil
	c.setMatrix(c.startMatrix)
}

// center animates any drifted edge back to the viewport boundary,
// evaluating each axis independently. Content larger than the viewport
// has inward-drifted far edges pulled back out; content smaller than
// the viewport has outside edges pulled back in. No-op when auto-center
// is disabled or nothing drifted.
func (c *Controller) center() {
	if !c.cfg.autoCenter {
		return
	}
	b := c.bounds
	var shiftX, shiftY float64

	if c.displayedWidth() > c.viewportW {
		if b.Min.X > 0 {
			shiftX = -b.Min.X
		} else if b.Max.X < c.viewportW {
			shiftX = c.viewportW - b.Max.X
		}
	} else {
		if b.Min.X < 0 {
			shiftX = -b.Min.X
		} else if b.Max.X > c.viewportW {
			shiftX = c.viewportW - b.Max.X
		}
	}

	if c.displayedHeight() > c.viewportH {
		if b.Min.Y > 0 {
			shiftY = -b.Min.Y
		} else if b.Max.Y < c.viewportH {
			shiftY = c.viewportH - b.Max.Y
		}
	} else {
		if b.Min.Y < 0 {
			shiftY = -b.Min.Y
		} else if b.Max.Y > c.viewportH {
			shiftY = c.viewportH - b.Max.Y
		}
	}

	if shiftX == 0 && shiftY == 0 {
		return
	}
	c.animateTo(c.matrix.Translated(shiftX, shiftY))
}

// animateTo starts a convergence animation toward target. A new
// animation supersedes any in-flight one; there is no cancellation
// handshake beyond being overwritten.
func (c *Controller) animateTo(target Matrix) {
	if c.gesture != nil {
		c.gesture.Zoom(target.ScaleX() > c.matrix.ScaleX(), c.scaleFactor)
	}
	Logger().Debug("animate", "targetScale", target.ScaleX(), "targetTx", target.TranslateX(), "targetTy", target.TranslateY())
	c.anim = newAnimation(c.matrix, target)
}

// Tick advances an in-flight animation to the given time and reports
// whether one is still running afterwards. On completion the transform
// is snapped exactly to the animation target.
func (c *Controller) Tick(now time.Time) bool {
	if c.anim == nil {
		return false
	}
	m, done := c.anim.at(now)
	c.setMatrix(m)
	if done {
		c.anim = nil
	}
	return c.anim != nil
}

// NoteZooming records a zooming-state observation from the pinch
// classifier and notifies the gesture observer on transitions.
func (c *Controller) NoteZooming(zooming bool) {
	if c.zooming == zooming {
		return
	}
	c.zooming = zooming
	if c.gesture != nil {
		c.gesture.Zoom(zooming, c.scaleFactor)
	}
}

func (c *Controller) emitSingleTap() {
	if c.gesture != nil {
		c.gesture.SingleTap()
	}
}

func (c *Controller) emitDoubleTap() {
	if c.gesture != nil {
		c.gesture.DoubleTap()
	}
}

// setMatrix is the single commit path for transform mutations: it
// updates the derived bounds and scale factor and notifies the bounds
// observer.
func (c *Controller) setMatrix(m Matrix) {
	c.matrix = m
	c.bounds = Rect{
		Min: Point{X: m.TranslateX(), Y: m.TranslateY()},
		Max: Point{
			X: c.contentW*m.ScaleX() + m.TranslateX(),
			Y: c.contentH*m.ScaleY() + m.TranslateY(),
		},
	}
	if c.hasStart && c.startMatrix.ScaleX() != 0 {
		c.scaleFactor = m.ScaleX() / c.startMatrix.ScaleX()
	}
	c.notifyBounds()
}

// notifyBounds reports edge distances after every commit, and alignment
// transitions whenever an edge's off-screen state flips.
func (c *Controller) notifyBounds() {
	if c.boundsObs == nil {
		return
	}
	b := c.bounds
	c.boundsObs.DistancesChanged(EdgeDistances{
		Left:   b.Min.X,
		Top:    b.Min.Y,
		Right:  c.viewportW - b.Max.X,
		Bottom: c.viewportH - b.Max.Y,
	})

	w, h := c.displayedWidth(), c.displayedHeight()
	if w <= 0 || h <= 0 {
		return
	}
	off := [4]float64{
		AlignLeft:   max(0, -b.Min.X) / w,
		AlignRight:  max(0, b.Max.X-c.viewportW) / w,
		AlignTop:    max(0, -b.Min.Y) / h,
		AlignBottom: max(0, b.Max.Y-c.viewportH) / h,
	}
	for edge, fraction := range off {
		outside := fraction > 0
		if outside != c.offScreen[edge] {
			c.offScreen[edge] = outside
			c.boundsObs.AlignmentChanged(Alignment(edge), fraction)
		}
	}
}
