package zoomview

import (
	"testing"
	"time"
)

type recordingTapHandler struct {
	ups       []Point
	confirmed []Point
	doubles   []Point
}

func (h *recordingTapHandler) SingleTapUp(p Point)        { h.ups = append(h.ups, p) }
func (h *recordingTapHandler) SingleTapConfirmed(p Point) { h.confirmed = append(h.confirmed, p) }
func (h *recordingTapHandler) DoubleTap(p Point)          { h.doubles = append(h.doubles, p) }

func TestTapDetectorSingleTap(t *testing.T) {
	h := &recordingTapHandler{}
	d := NewTapDetector(h)
	t0 := time.Now()

	d.OnTouch(ev(PhaseDown, t0, Pt(50, 50)))
	d.OnTouch(ev(PhaseUp, t0.Add(50*time.Millisecond)))

	if len(h.ups) != 1 || h.ups[0] != Pt(50, 50) {
		t.Fatalf("ups = %v, want one at (50,50)", h.ups)
	}
	if len(h.confirmed) != 0 {
		t.Fatal("confirmed before the double-tap window expired")
	}

	d.Tick(t0.Add(100 * time.Millisecond))
	if len(h.confirmed) != 0 {
		t.Fatal("confirmed too early")
	}
	d.Tick(t0.Add(500 * time.Millisecond))
	if len(h.confirmed) != 1 {
		t.Fatalf("confirmed = %v, want one entry", h.confirmed)
	}
}

func TestTapDetectorDoubleTap(t *testing.T) {
	h := &recordingTapHandler{}
	d := NewTapDetector(h)
	t0 := time.Now()

	d.OnTouch(ev(PhaseDown, t0, Pt(50, 50)))
	d.OnTouch(ev(PhaseUp, t0.Add(40*time.Millisecond)))
	d.OnTouch(ev(PhaseDown, t0.Add(150*time.Millisecond), Pt(52, 51)))
	if !d.DoubleTapPending() {
		t.Fatal("second tap down not recognized")
	}
	d.OnTouch(ev(PhaseUp, t0.Add(200*time.Millisecond)))

	if len(h.doubles) != 1 {
		t.Fatalf("doubles = %v, want one entry", h.doubles)
	}
	if len(h.confirmed) != 0 {
		t.Fatal("single tap confirmed despite double tap")
	}
	d.Tick(t0.Add(time.Second))
	if len(h.confirmed) != 0 {
		t.Fatal("single tap confirmed after double tap")
	}
}

func TestTapDetectorSecondTapTooLate(t *testing.T) {
	h := &recordingTapHandler{}
	d := NewTapDetector(h)
	t0 := time.Now()

	d.OnTouch(ev(PhaseDown, t0, Pt(50, 50)))
	d.OnTouch(ev(PhaseUp, t0.Add(40*time.Millisecond)))
	d.OnTouch(ev(PhaseDown, t0.Add(time.Second), Pt(50, 50)))
	if d.DoubleTapPending() {
		t.Fatal("late second tap counted as double tap")
	}
}

func TestTapDetectorMoveCancelsTap(t *testing.T) {
	h := &recordingTapHandler{}
	d := NewTapDetector(h)
	t0 := time.Now()

	d.OnTouch(ev(PhaseDown, t0, Pt(50, 50)))
	d.OnTouch(ev(PhaseMove, t0, Pt(100, 50)))
	d.OnTouch(ev(PhaseUp, t0.Add(50*time.Millisecond)))

	if len(h.ups) != 0 {
		t.Errorf("ups = %v, want none after a drag", h.ups)
	}
}

func TestTapDetectorMultiTouchCancelsTap(t *testing.T) {
	h := &recordingTapHandler{}
	d := NewTapDetector(h)
	t0 := time.Now()

	d.OnTouch(ev(PhaseDown, t0, Pt(50, 50)))
	d.OnTouch(ev(PhaseDown, t0, Pt(50, 50), Pt(60, 60)))
	d.OnTouch(ev(PhaseUp, t0.Add(50*time.Millisecond)))

	if len(h.ups) != 0 {
		t.Errorf("ups = %v, want none after multi-touch", h.ups)
	}
}
