// Package cli implements the zoomdemo command-line interface.
//
// zoomdemo opens an image in an interactive terminal viewer built on the
// zoomview widget: drag to pan, use the mouse wheel to zoom about the
// cursor, double-click to zoom in or back out. The viewer is a bubbletea
// program that renders the widget's viewport with half-block cells, two
// pixels per terminal row.
//
// Widget behavior (scale range, release policy, edge restriction and so
// on) is configured through an optional TOML file passed with --config.
package cli
