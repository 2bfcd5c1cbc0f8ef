package zoomview

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Interpolator selects how source pixels are sampled when compositing
// the transformed image. It is any of the x/image/draw transformers.
type Interpolator = xdraw.Transformer

// Interpolation modes for DrawImage.
var (
	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest Interpolator = xdraw.NearestNeighbor

	// InterpBilinear approximates linear interpolation between
	// neighboring pixels. Good balance between quality and speed.
	InterpBilinear Interpolator = xdraw.ApproxBiLinear

	// InterpCatmullRom performs cubic interpolation. Highest quality
	// but slower than bilinear.
	InterpCatmullRom Interpolator = xdraw.CatmullRom
)

// DrawImage composites src through the affine matrix m into dst.
// dst pixels outside the transformed source are left untouched, so the
// caller decides the background.
func DrawImage(dst *image.RGBA, src image.Image, m Matrix, interp Interpolator) {
	if src == nil || interp == nil {
		return
	}
	aff := f64.Aff3{
		m.A, m.B, m.C,
		m.D, m.E, m.F,
	}
	interp.Transform(dst, aff, src, src.Bounds(), xdraw.Over, nil)
}

// Draw composites the view's image through its current transform into
// dst using bilinear sampling. No-op when no image is set.
func (v *View) Draw(dst *image.RGBA) {
	if v.img == nil {
		return
	}
	DrawImage(dst, v.img, v.ctrl.Matrix(), InterpBilinear)
}

// Viewport allocates an RGBA buffer matching the view's viewport size,
// ready to be passed to Draw.
func (v *View) Viewport() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, int(v.ctrl.viewportW), int(v.ctrl.viewportH)))
}
