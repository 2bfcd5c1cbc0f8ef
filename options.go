package zoomview

import (
	"errors"
	"fmt"
)

// Default configuration values, matching the widget's traditional
// behavior: zooming between 0.6x and 8x of the start scale, double tap
// zooming to 3x, animated reset when released at or under start scale.
const (
	DefaultMinScale                   = 0.6
	DefaultMaxScale                   = 8.0
	DefaultDoubleTapToZoomScaleFactor = 3.0
)

// ErrInvalidScaleRange is returned when a configured scale range is
// unusable: minScale >= maxScale, or either bound is not positive.
var ErrInvalidScaleRange = errors.New("zoomview: invalid scale range")

// Option configures a Controller (or a View, which forwards options to
// its Controller) during creation.
//
// Example:
//
//	v, err := zoomview.New(800, 600,
//	    zoomview.WithScaleRange(1, 4),
//	    zoomview.WithRestrictBounds(true),
//	)
type Option func(*config)

type config struct {
	zoomable        bool
	translatable    bool
	restrictBounds  bool
	animateOnReset  bool
	doubleTapToZoom bool
	autoCenter      bool

	minScale                   float64
	maxScale                   float64
	doubleTapToZoomScaleFactor float64

	autoResetMode AutoResetMode
}

func defaultConfig() config {
	return config{
		zoomable:                   true,
		translatable:               true,
		restrictBounds:             false,
		animateOnReset:             true,
		doubleTapToZoom:            true,
		autoCenter:                 true,
		minScale:                   DefaultMinScale,
		maxScale:                   DefaultMaxScale,
		doubleTapToZoomScaleFactor: DefaultDoubleTapToZoomScaleFactor,
		autoResetMode:              AutoResetUnder,
	}
}

// validate checks the scale range and clamps the double-tap target into
// it. A bad range is a configuration error, reported immediately; an
// out-of-range double-tap factor is not an error, it is clamped.
func (c *config) validate() error {
	if c.minScale >= c.maxScale {
		return fmt.Errorf("%w: minScale %v must be less than maxScale %v",
			ErrInvalidScaleRange, c.minScale, c.maxScale)
	}
	if c.minScale <= 0 {
		return fmt.Errorf("%w: minScale %v must be greater than 0", ErrInvalidScaleRange, c.minScale)
	}
	if c.maxScale <= 0 {
		return fmt.Errorf("%w: maxScale %v must be greater than 0", ErrInvalidScaleRange, c.maxScale)
	}
	if c.doubleTapToZoomScaleFactor > c.maxScale {
		c.doubleTapToZoomScaleFactor = c.maxScale
	}
	if c.doubleTapToZoomScaleFactor < c.minScale {
		c.doubleTapToZoomScaleFactor = c.minScale
	}
	return nil
}

// WithZoomable enables or disables pinch zooming.
func WithZoomable(zoomable bool) Option {
	return func(c *config) { c.zoomable = zoomable }
}

// WithTranslatable enables or disables panning.
func WithTranslatable(translatable bool) Option {
	return func(c *config) { c.translatable = translatable }
}

// WithRestrictBounds keeps already-visible image edges pinned to the
// viewport edges while panning. See Controller.ApplyTranslate.
func WithRestrictBounds(restrict bool) Option {
	return func(c *config) { c.restrictBounds = restrict }
}

// WithAnimateOnReset selects whether reset animates back to the start
// state or snaps immediately.
func WithAnimateOnReset(animate bool) Option {
	return func(c *config) { c.animateOnReset = animate }
}

// WithDoubleTapToZoom enables or disables double-tap zooming.
func WithDoubleTapToZoom(enabled bool) Option {
	return func(c *config) { c.doubleTapToZoom = enabled }
}

// WithDoubleTapToZoomScaleFactor sets the target scale factor of a
// double-tap zoom. Values outside the scale range are clamped into it.
func WithDoubleTapToZoomScaleFactor(factor float64) Option {
	return func(c *config) { c.doubleTapToZoomScaleFactor = factor }
}

// WithAutoCenter selects whether re-centering pulls a drifted image
// back to the viewport edges after interaction ends.
func WithAutoCenter(autoCenter bool) Option {
	return func(c *config) { c.autoCenter = autoCenter }
}

// WithScaleRange sets the allowed scale range as multiplicative factors
// of the start scale. minScale must be less than maxScale and both must
// be positive; violations surface as ErrInvalidScaleRange from the
// constructor.
func WithScaleRange(minScale, maxScale float64) Option {
	return func(c *config) {
		c.minScale = minScale
		c.maxScale = maxScale
	}
}

// WithAutoResetMode sets the release policy.
func WithAutoResetMode(mode AutoResetMode) Option {
	return func(c *config) { c.autoResetMode = mode }
}
