package zoomview

import (
	"math"
	"strings"
)

// ScaleType selects how the content is initially fitted into the
// viewport before any interaction. It determines the base matrix, which
// the next interaction captures as the start state.
type ScaleType uint8

const (
	// ScaleFitCenter scales the content as large as possible without
	// cropping, preserving aspect ratio, and centers it. This is the
	// default.
	ScaleFitCenter ScaleType = iota
	// ScaleCenter centers the content at its intrinsic size.
	ScaleCenter
	// ScaleCenterCrop scales the content to cover the viewport,
	// preserving aspect ratio, and centers it.
	ScaleCenterCrop
	// ScaleCenterInside behaves like ScaleFitCenter but never scales
	// the content up.
	ScaleCenterInside
	// ScaleFitXY stretches the content to the viewport without
	// preserving aspect ratio.
	ScaleFitXY
)

// String returns the scale type name.
func (s ScaleType) String() string {
	switch s {
	case ScaleFitCenter:
		return "fitCenter"
	case ScaleCenter:
		return "center"
	case ScaleCenterCrop:
		return "centerCrop"
	case ScaleCenterInside:
		return "centerInside"
	case ScaleFitXY:
		return "fitXY"
	}
	return "unknown"
}

// ParseScaleType parses a scale type name, case-insensitively.
// Unrecognized values fall back to ScaleFitCenter.
func ParseScaleType(s string) ScaleType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center":
		return ScaleCenter
	case "centercrop":
		return ScaleCenterCrop
	case "centerinside":
		return ScaleCenterInside
	case "fitxy":
		return ScaleFitXY
	default:
		return ScaleFitCenter
	}
}

// baseMatrix computes the pre-interaction transform placing content of
// the given intrinsic size into the viewport per the scale type.
func baseMatrix(st ScaleType, viewportW, viewportH, contentW, contentH float64) Matrix {
	if contentW <= 0 || contentH <= 0 {
		return Identity()
	}

	var sx, sy float64
	switch st {
	case ScaleFitXY:
		sx = viewportW / contentW
		sy = viewportH / contentH
	case ScaleCenter:
		sx, sy = 1, 1
	case ScaleCenterCrop:
		s := math.Max(viewportW/contentW, viewportH/contentH)
		sx, sy = s, s
	case ScaleCenterInside:
		s := math.Min(1, math.Min(viewportW/contentW, viewportH/contentH))
		sx, sy = s, s
	default: // ScaleFitCenter
		s := math.Min(viewportW/contentW, viewportH/contentH)
		sx, sy = s, s
	}

	tx := (viewportW - contentW*sx) / 2
	ty := (viewportH - contentH*sy) / 2
	return Matrix{A: sx, C: tx, E: sy, F: ty}
}
