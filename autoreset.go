package zoomview

import "strings"

// AutoResetMode selects what happens to the transform when the last
// pointer is released, compared against the start scale.
type AutoResetMode uint8

const (
	// AutoResetUnder resets when released at or under the start scale,
	// and re-centers otherwise. This is the default.
	AutoResetUnder AutoResetMode = iota
	// AutoResetOver resets when released at or over the start scale,
	// and re-centers otherwise.
	AutoResetOver
	// AutoResetAlways resets on every release.
	AutoResetAlways
	// AutoResetNever never resets; it only re-centers.
	AutoResetNever
)

// String returns the mode name.
func (m AutoResetMode) String() string {
	switch m {
	case AutoResetUnder:
		return "under"
	case AutoResetOver:
		return "over"
	case AutoResetAlways:
		return "always"
	case AutoResetNever:
		return "never"
	}
	return "unknown"
}

// ParseAutoResetMode parses a mode name, case-insensitively.
// Unrecognized values fall back to AutoResetUnder.
func ParseAutoResetMode(s string) AutoResetMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "over":
		return AutoResetOver
	case "always":
		return AutoResetAlways
	case "never":
		return AutoResetNever
	default:
		return AutoResetUnder
	}
}
