package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the zoomdemo CLI and returns an error if it fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including the widget's
//     per-gesture diagnostics
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
		scaleType  string
	)

	root := &cobra.Command{
		Use:          "zoomdemo [image]",
		Short:        "zoomdemo views an image with pinch-style zoom and pan in the terminal",
		Long: `zoomdemo opens an image in an interactive terminal viewer.

Drag with the left mouse button to pan, scroll to zoom about the cursor,
and double-click to zoom in (or back out). Press r to reset, t to cycle
the scale type, q to quit.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			installLogger(newLogger(os.Stderr, level))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Image = args[0]
			}
			if scaleType != "" {
				cfg.ScaleType = scaleType
			}
			if cfg.Image == "" {
				return errors.New("no image given: pass a path or set image in the config file")
			}
			return runViewer(cmd.Context(), cfg)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("zoomdemo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	root.Flags().StringVarP(&scaleType, "scale-type", "s", "", "initial fit: fitCenter, center, centerCrop, centerInside, fitXY")

	return root.ExecuteContext(ctx)
}
