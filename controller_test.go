package zoomview

import (
	"errors"
	"testing"
	"time"
)

// newTestController builds a controller over a 100x100 viewport showing
// 100x100 content at identity, the simplest start state.
func newTestController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c, err := NewController(opts...)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	c.SetViewport(100, 100)
	c.SetContentSize(100, 100)
	c.SetBaseMatrix(Identity())
	return c
}

// finish runs an in-flight animation to completion.
func finish(t *testing.T, c *Controller) {
	t.Helper()
	if !c.Animating() {
		t.Fatal("no animation in flight")
	}
	t0 := time.Now()
	c.Tick(t0)
	if c.Tick(t0.Add(resetDuration)) {
		t.Fatal("animation still running past its duration")
	}
}

func TestApplyScaleClampsToRange(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"within range", 2, 2},
		{"above max", 20, 8},
		{"below min", 0.1, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			c.ApplyScale(tt.factor, Pt(50, 50))
			if got := c.Matrix().ScaleX(); got != tt.want {
				t.Errorf("ScaleX() = %v, want exactly %v", got, tt.want)
			}
			if got := c.ScaleFactor(); got != tt.want {
				t.Errorf("ScaleFactor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyScaleKeepsFocusFixed(t *testing.T) {
	c := newTestController(t)
	c.ApplyScale(2, Pt(50, 50))
	m := c.Matrix()
	if m.TranslateX() != -50 || m.TranslateY() != -50 {
		t.Errorf("translate = (%v, %v), want (-50, -50)", m.TranslateX(), m.TranslateY())
	}
	if got := c.Bounds(); got != NewRect(Pt(-50, -50), Pt(150, 150)) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestApplyScaleDisabled(t *testing.T) {
	c := newTestController(t, WithZoomable(false))
	c.ApplyScale(2, Pt(50, 50))
	if c.Matrix() != Identity() {
		t.Error("scale applied while zooming disabled")
	}
}

func TestApplyTranslateSuppressedAtStartScale(t *testing.T) {
	c := newTestController(t)
	c.ApplyTranslate(Pt(10, 10))
	if c.Matrix() != Identity() {
		t.Error("translation applied at start scale")
	}
}

func TestApplyTranslateDisabled(t *testing.T) {
	c := newTestController(t, WithTranslatable(false))
	c.ApplyScale(2, Pt(0, 0))
	c.ApplyTranslate(Pt(10, 10))
	if c.Matrix().TranslateX() != 0 {
		t.Error("translation applied while panning disabled")
	}
}

func TestApplyTranslatePansWhenZoomed(t *testing.T) {
	c := newTestController(t)
	c.ApplyScale(2, Pt(0, 0))
	c.ApplyTranslate(Pt(-30, -10))
	m := c.Matrix()
	if m.TranslateX() != -30 || m.TranslateY() != -10 {
		t.Errorf("translate = (%v, %v), want (-30, -10)", m.TranslateX(), m.TranslateY())
	}
}

func TestApplyTranslateHardClamp(t *testing.T) {
	c := newTestController(t)
	c.ApplyScale(2, Pt(0, 0)) // bounds (0,0)-(200,200)

	// Dragging far left stops with the right edge on the viewport origin.
	c.ApplyTranslate(Pt(-100000, 0))
	if got := c.Bounds().Max.X; got != 0 {
		t.Errorf("Bounds().Max.X = %v, want 0", got)
	}

	// Dragging far right stops with the left edge on the far viewport edge.
	c.ApplyTranslate(Pt(100000, 0))
	if got := c.Bounds().Min.X; got != 100 {
		t.Errorf("Bounds().Min.X = %v, want 100", got)
	}
}

func TestRestrictBoundsPinsVisibleEdge(t *testing.T) {
	c := newTestController(t, WithRestrictBounds(true))
	c.ApplyScale(2, Pt(0, 0)) // bounds (0,0)-(200,200), left edge on the boundary

	// The left edge is visible: it must not be dragged further inward.
	c.ApplyTranslate(Pt(30, 0))
	if got := c.Matrix().TranslateX(); got != 0 {
		t.Errorf("TranslateX() = %v, want 0 (edge pinned)", got)
	}

	// Dragging the other way is fine while the right edge stays outside.
	c.ApplyTranslate(Pt(-30, 0))
	if got := c.Matrix().TranslateX(); got != -30 {
		t.Errorf("TranslateX() = %v, want -30", got)
	}
}

func TestRestrictBoundsBypassedDuringPinch(t *testing.T) {
	c := newTestController(t, WithRestrictBounds(true))
	c.ApplyScale(2, Pt(0, 0))
	c.SetPinchActive(true)
	c.ApplyTranslate(Pt(30, 0))
	if got := c.Matrix().TranslateX(); got != 30 {
		t.Errorf("TranslateX() = %v, want 30 (pinch bypasses restriction)", got)
	}
}

func TestRestrictBoundsSmallContent(t *testing.T) {
	c, err := NewController(WithRestrictBounds(true))
	if err != nil {
		t.Fatal(err)
	}
	c.SetViewport(100, 100)
	c.SetContentSize(30, 30)
	c.SetBaseMatrix(Identity())
	c.ApplyScale(2, Pt(0, 0)) // bounds (0,0)-(60,60), narrower than the viewport

	// A large drag stops with the right edge on the viewport edge.
	c.ApplyTranslate(Pt(200, 0))
	if got := c.Bounds().Max.X; got != 100 {
		t.Errorf("Bounds().Max.X = %v, want 100", got)
	}
}

func TestReleaseUnderResetsWhenShrunk(t *testing.T) {
	c := newTestController(t, WithAnimateOnReset(false))
	c.ApplyScale(0.8, Pt(50, 50))
	c.Release()
	if c.Matrix() != Identity() {
		t.Errorf("Matrix() = %+v, want identity after reset", c.Matrix())
	}
	if c.ScaleFactor() != 1 {
		t.Errorf("ScaleFactor() = %v, want 1", c.ScaleFactor())
	}
}

func TestReleaseUnderRecentersWhenGrown(t *testing.T) {
	c := newTestController(t)
	c.ApplyScale(1.5, Pt(0, 0))
	c.ApplyTranslate(Pt(40, 0))
	c.Release()
	finish(t, c)
	if got := c.Matrix().TranslateX(); got != 0 {
		t.Errorf("TranslateX() = %v, want 0 after re-center", got)
	}
	if got := c.Matrix().ScaleX(); got != 1.5 {
		t.Errorf("ScaleX() = %v, want 1.5 (re-center keeps scale)", got)
	}
}

func TestReleaseOverResetsWhenGrown(t *testing.T) {
	c := newTestController(t, WithAutoResetMode(AutoResetOver), WithAnimateOnReset(false))
	c.ApplyScale(1.5, Pt(50, 50))
	c.Release()
	if c.Matrix() != Identity() {
		t.Error("over mode did not reset a grown image")
	}
}

func TestReleaseAlwaysResets(t *testing.T) {
	c := newTestController(t, WithAutoResetMode(AutoResetAlways), WithAnimateOnReset(false))
	c.ApplyScale(1.5, Pt(0, 0))
	c.ApplyTranslate(Pt(20, 20))
	c.Release()
	if c.Matrix() != Identity() {
		t.Error("always mode did not reset")
	}
}

func TestReleaseNeverRecentersDriftedEdges(t *testing.T) {
	c := newTestController(t, WithAutoResetMode(AutoResetNever))
	c.ApplyScale(1.5, Pt(0, 0))
	c.ApplyTranslate(Pt(30, 20))
	c.Release()
	finish(t, c)
	m := c.Matrix()
	if m.TranslateX() != 0 || m.TranslateY() != 0 {
		t.Errorf("translate = (%v, %v), want (0, 0)", m.TranslateX(), m.TranslateY())
	}
	if m.ScaleX() != 1.5 {
		t.Errorf("ScaleX() = %v, want 1.5", m.ScaleX())
	}
}

func TestReleaseNeverNoDriftIsNoop(t *testing.T) {
	c := newTestController(t, WithAutoResetMode(AutoResetNever))
	c.ApplyScale(0.8, Pt(50, 50))
	c.Release()
	if c.Animating() {
		t.Error("release animated with nothing to pull back")
	}
	if got := c.Matrix().ScaleX(); got != 0.8 {
		t.Errorf("ScaleX() = %v, want 0.8 (never mode keeps scale)", got)
	}
}

func TestReleaseAutoCenterDisabled(t *testing.T) {
	c := newTestController(t, WithAutoResetMode(AutoResetNever), WithAutoCenter(false))
	c.ApplyScale(1.5, Pt(0, 0))
	c.ApplyTranslate(Pt(30, 20))
	before := c.Matrix()
	c.Release()
	if c.Animating() || c.Matrix() != before {
		t.Error("release moved the image with auto-center disabled")
	}
}

func TestDoubleTapZoomsAndResets(t *testing.T) {
	c := newTestController(t, WithAnimateOnReset(false))

	if !c.DoubleTap(Pt(50, 50)) {
		t.Fatal("DoubleTap not consumed")
	}
	finish(t, c)
	if got := c.Matrix().ScaleX(); got != 3 {
		t.Errorf("ScaleX() = %v, want 3 after double-tap zoom", got)
	}

	// A second double tap away from start scale resets instead.
	if !c.DoubleTap(Pt(10, 10)) {
		t.Fatal("DoubleTap not consumed")
	}
	if c.Matrix() != Identity() {
		t.Errorf("Matrix() = %+v, want identity after second double tap", c.Matrix())
	}
}

func TestDoubleTapFactorClampedToRange(t *testing.T) {
	c := newTestController(t, WithDoubleTapToZoomScaleFactor(10), WithAnimateOnReset(false))
	if got := c.DoubleTapToZoomScaleFactor(); got != 8 {
		t.Fatalf("DoubleTapToZoomScaleFactor() = %v, want 8", got)
	}
	c.DoubleTap(Pt(50, 50))
	finish(t, c)
	if got := c.Matrix().ScaleX(); got != 8 {
		t.Errorf("ScaleX() = %v, want 8", got)
	}
}

func TestDoubleTapDisabled(t *testing.T) {
	c := newTestController(t, WithDoubleTapToZoom(false))
	if c.DoubleTap(Pt(50, 50)) {
		t.Error("DoubleTap consumed while disabled")
	}
}

func TestResetSnapAndAnimate(t *testing.T) {
	c := newTestController(t)
	c.ApplyScale(2, Pt(50, 50))

	c.Reset(false)
	if c.Animating() {
		t.Fatal("snap reset started an animation")
	}
	if c.Matrix() != Identity() {
		t.Errorf("Matrix() = %+v, want identity", c.Matrix())
	}

	c.ApplyScale(2, Pt(50, 50))
	c.Reset(true)
	finish(t, c)
	if c.Matrix() != Identity() {
		t.Errorf("Matrix() = %+v, want exact identity after animated reset", c.Matrix())
	}
}

func TestSetScaleRangeRejectsBadRange(t *testing.T) {
	c := newTestController(t)
	if err := c.SetScaleRange(5, 2); !errors.Is(err, ErrInvalidScaleRange) {
		t.Fatalf("SetScaleRange(5, 2) = %v, want ErrInvalidScaleRange", err)
	}
	minScale, maxScale := c.ScaleRange()
	if minScale != DefaultMinScale || maxScale != DefaultMaxScale {
		t.Errorf("range changed to (%v, %v) despite error", minScale, maxScale)
	}
	if err := c.SetScaleRange(1, 4); err != nil {
		t.Fatalf("SetScaleRange(1, 4) = %v", err)
	}
}

func TestScaleRangeTracksStartScale(t *testing.T) {
	c, err := NewController(WithScaleRange(0.5, 4))
	if err != nil {
		t.Fatal(err)
	}
	c.SetViewport(100, 100)
	c.SetContentSize(50, 50)
	c.SetBaseMatrix(Scale(2, 2)) // start scale 2

	c.ApplyScale(100, Pt(0, 0))
	if got := c.Matrix().ScaleX(); got != 8 {
		t.Errorf("ScaleX() = %v, want 8 (4x of start scale 2)", got)
	}
	if got := c.ScaleFactor(); got != 4 {
		t.Errorf("ScaleFactor() = %v, want 4", got)
	}
}

type recordingBoundsObserver struct {
	distances  []EdgeDistances
	alignments []Alignment
	fractions  []float64
}

func (o *recordingBoundsObserver) AlignmentChanged(edge Alignment, offScreenFraction float64) {
	o.alignments = append(o.alignments, edge)
	o.fractions = append(o.fractions, offScreenFraction)
}

func (o *recordingBoundsObserver) DistancesChanged(d EdgeDistances) {
	o.distances = append(o.distances, d)
}

func TestBoundsObserver(t *testing.T) {
	c := newTestController(t)
	obs := &recordingBoundsObserver{}
	c.SetBoundsObserver(obs)

	c.ApplyScale(2, Pt(50, 50)) // bounds (-50,-50)-(150,150)

	if len(obs.distances) != 1 {
		t.Fatalf("distances = %v, want one entry", obs.distances)
	}
	want := EdgeDistances{Left: -50, Top: -50, Right: -50, Bottom: -50}
	if obs.distances[0] != want {
		t.Errorf("DistancesChanged(%+v), want %+v", obs.distances[0], want)
	}

	// All four edges moved off screen by a quarter of the displayed size.
	if len(obs.alignments) != 4 {
		t.Fatalf("alignments = %v, want four transitions", obs.alignments)
	}
	for i, f := range obs.fractions {
		if f != 0.25 {
			t.Errorf("fraction[%d] = %v, want 0.25", i, f)
		}
	}

	// Resetting flips each edge back on screen, once per edge.
	obs.alignments = nil
	obs.fractions = nil
	c.Reset(false)
	if len(obs.alignments) != 4 {
		t.Fatalf("alignments after reset = %v, want four transitions", obs.alignments)
	}
	for i, f := range obs.fractions {
		if f != 0 {
			t.Errorf("fraction[%d] = %v, want 0", i, f)
		}
	}
}

type recordingGestureObserver struct {
	singles int
	doubles int
	zooms   []bool
}

func (o *recordingGestureObserver) SingleTap() { o.singles++ }
func (o *recordingGestureObserver) DoubleTap() { o.doubles++ }
func (o *recordingGestureObserver) Zoom(zooming bool, scaleFactor float64) {
	o.zooms = append(o.zooms, zooming)
}

func TestGestureObserverZoomTransitions(t *testing.T) {
	c := newTestController(t)
	obs := &recordingGestureObserver{}
	c.SetGestureObserver(obs)

	c.NoteZooming(true)
	c.NoteZooming(true) // no transition
	c.NoteZooming(false)

	if len(obs.zooms) != 2 || obs.zooms[0] != true || obs.zooms[1] != false {
		t.Errorf("zooms = %v, want [true false]", obs.zooms)
	}
}
