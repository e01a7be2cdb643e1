// Package logging configures the process-wide structured logger.
//
// Only the CLI layer and long-running jobs (sweeps, exports) log; the
// evaluation packages stay silent and report through errors.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the default slog logger. Verbose enables debug records,
// format selects "text" (default) or "json" output. A nil writer means
// stderr.
func Setup(verbose bool, format string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// New returns a logger tagged with the originating component.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
