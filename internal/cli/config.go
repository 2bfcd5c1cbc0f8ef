package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/zoomview"
)

// Config is the zoomdemo TOML configuration. All fields are optional;
// absent keys keep the widget defaults.
//
// Example:
//
//	image = "photo.png"
//	scale_type = "centerCrop"
//
//	[widget]
//	min_scale = 1.0
//	max_scale = 4.0
//	restrict_bounds = true
//	auto_reset_mode = "never"
type Config struct {
	Image     string       `toml:"image"`
	ScaleType string       `toml:"scale_type"`
	Widget    WidgetConfig `toml:"widget"`
}

// WidgetConfig mirrors the widget options. Pointer fields distinguish
// "not set" from an explicit false/zero.
type WidgetConfig struct {
	Zoomable                   *bool    `toml:"zoomable"`
	Translatable               *bool    `toml:"translatable"`
	RestrictBounds             *bool    `toml:"restrict_bounds"`
	AnimateOnReset             *bool    `toml:"animate_on_reset"`
	DoubleTapToZoom            *bool    `toml:"double_tap_to_zoom"`
	AutoCenter                 *bool    `toml:"auto_center"`
	MinScale                   *float64 `toml:"min_scale"`
	MaxScale                   *float64 `toml:"max_scale"`
	DoubleTapToZoomScaleFactor *float64 `toml:"double_tap_to_zoom_scale_factor"`
	AutoResetMode              string   `toml:"auto_reset_mode"`
}

// loadConfig reads and parses a TOML config file. An empty path returns
// the zero config, leaving everything at the widget defaults.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the widget section to zoomview options, emitting one
// option per key that was actually set.
func (w WidgetConfig) Options() []zoomview.Option {
	var opts []zoomview.Option
	if w.Zoomable != nil {
		opts = append(opts, zoomview.WithZoomable(*w.Zoomable))
	}
	if w.Translatable != nil {
		opts = append(opts, zoomview.WithTranslatable(*w.Translatable))
	}
	if w.RestrictBounds != nil {
		opts = append(opts, zoomview.WithRestrictBounds(*w.RestrictBounds))
	}
	if w.AnimateOnReset != nil {
		opts = append(opts, zoomview.WithAnimateOnReset(*w.AnimateOnReset))
	}
	if w.DoubleTapToZoom != nil {
		opts = append(opts, zoomview.WithDoubleTapToZoom(*w.DoubleTapToZoom))
	}
	if w.AutoCenter != nil {
		opts = append(opts, zoomview.WithAutoCenter(*w.AutoCenter))
	}
	if w.MinScale != nil || w.MaxScale != nil {
		minScale, maxScale := zoomview.DefaultMinScale, zoomview.DefaultMaxScale
		if w.MinScale != nil {
			minScale = *w.MinScale
		}
		if w.MaxScale != nil {
			maxScale = *w.MaxScale
		}
		opts = append(opts, zoomview.WithScaleRange(minScale, maxScale))
	}
	if w.DoubleTapToZoomScaleFactor != nil {
		opts = append(opts, zoomview.WithDoubleTapToZoomScaleFactor(*w.DoubleTapToZoomScaleFactor))
	}
	if w.AutoResetMode != "" {
		opts = append(opts, zoomview.WithAutoResetMode(zoomview.ParseAutoResetMode(w.AutoResetMode)))
	}
	return opts
}
