package zoomview

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The widget only ever produces axis-aligned scale and translation, so
// B and D stay zero in every matrix the controller emits.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// ScaleX returns the horizontal scale component.
func (m Matrix) ScaleX() float64 { return m.A }

// ScaleY returns the vertical scale component.
func (m Matrix) ScaleY() float64 { return m.E }

// TranslateX returns the horizontal translation component.
func (m Matrix) TranslateX() float64 { return m.C }

// TranslateY returns the vertical translation component.
func (m Matrix) TranslateY() float64 { return m.F }

// ScaleAbout returns the matrix post-multiplied by a scale of (sx, sy)
// centered at p in viewport space. The focus point p maps to itself, so
// zooming appears anchored under the user's fingers.
func (m Matrix) ScaleAbout(sx, sy float64, p Point) Matrix {
	s := Translate(p.X, p.Y).Multiply(Scale(sx, sy)).Multiply(Translate(-p.X, -p.Y))
	return s.Multiply(m)
}

// Translated returns the matrix post-multiplied by a translation of
// (dx, dy) in viewport space.
func (m Matrix) Translated(dx, dy float64) Matrix {
	return Translate(dx, dy).Multiply(m)
}

// Lerp linearly interpolates each component from m to target.
// t=0 returns m, t=1 returns target. The reset animation interpolates
// the scale and translation components independently this way.
func (m Matrix) Lerp(target Matrix, t float64) Matrix {
	return Matrix{
		A: m.A + (target.A-m.A)*t,
		B: m.B + (target.B-m.B)*t,
		C: m.C + (target.C-m.C)*t,
		D: m.D + (target.D-m.D)*t,
		E: m.E + (target.E-m.E)*t,
		F: m.F + (target.F-m.F)*t,
	}
}

// ApproxEqual reports whether every component of m is within epsilon of
// the corresponding component of other.
func (m Matrix) ApproxEqual(other Matrix, epsilon float64) bool {
	return math.Abs(m.A-other.A) <= epsilon &&
		math.Abs(m.B-other.B) <= epsilon &&
		math.Abs(m.C-other.C) <= epsilon &&
		math.Abs(m.D-other.D) <= epsilon &&
		math.Abs(m.E-other.E) <= epsilon &&
		math.Abs(m.F-other.F) <= epsilon
}
