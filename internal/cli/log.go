package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"

	"github.com/gogpu/zoomview"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// installLogger makes the widget library log through the CLI logger.
// A *log.Logger is a slog.Handler, so it plugs straight into the
// library's slog-based hook.
func installLogger(l *log.Logger) {
	zoomview.SetLogger(slog.New(l))
}
