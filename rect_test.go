package zoomview

import "testing"

func TestNewRectNormalizes(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   Rect
	}{
		{"ordered corners", Pt(0, 0), Pt(10, 20), Rect{Min: Pt(0, 0), Max: Pt(10, 20)}},
		{"swapped corners", Pt(10, 20), Pt(0, 0), Rect{Min: Pt(0, 0), Max: Pt(10, 20)}},
		{"mixed corners", Pt(10, 0), Pt(0, 20), Rect{Min: Pt(0, 0), Max: Pt(10, 20)}},
		{"negative coords", Pt(5, 5), Pt(-5, -5), Rect{Min: Pt(-5, -5), Max: Pt(5, 5)}},
		{"degenerate", Pt(3, 3), Pt(3, 3), Rect{Min: Pt(3, 3), Max: Pt(3, 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRect(tt.p1, tt.p2); got != tt.want {
				t.Errorf("NewRect(%v, %v) = %+v, want %+v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}

func TestRectSize(t *testing.T) {
	r := NewRect(Pt(-10, 5), Pt(30, 25))
	if got := r.Width(); got != 40 {
		t.Errorf("Width() = %v, want 40", got)
	}
	if got := r.Height(); got != 20 {
		t.Errorf("Height() = %v, want 20", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10))
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Pt(5, 5), true},
		{"min corner", Pt(0, 0), true},
		{"max corner", Pt(10, 10), true},
		{"on edge", Pt(10, 5), true},
		{"left of", Pt(-0.1, 5), false},
		{"below", Pt(5, 10.1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
