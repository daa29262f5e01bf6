// Package applog is the ambient structured-logging layer shared by cmd and
// internal/tui. The core packages (internal/chip8, internal/debugger)
// never import it: they return errors and let callers decide whether and
// how to log them, per spec.md §7's propagation policy.
package applog

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is a thin wrapper around charmbracelet/log, giving the rest of the
// repo a single seam to swap loggers or add fields without touching every
// call site.
type Logger struct {
	*log.Logger
}

// New returns a Logger writing to stderr (so it never collides with the
// bubbletea TUI, which owns stdout).
func New() *Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chippy",
	})
	return &Logger{Logger: l}
}
