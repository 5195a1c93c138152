// Package logging builds the charmbracelet/log logger shared by the CLI,
// the frontends and game sessions.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Stderr is the path value that selects standard error.
const Stderr = "-"

type nopCloser struct{}

// Close does nothing.
func (nopCloser) Close() error { return nil }

// New creates a logger writing to path at the given level.
// An empty path discards everything; "-" writes to stderr. Otherwise the
// file is created (with parent directories) and appended to; the returned
// Closer closes it.
func New(path, level string) (*log.Logger, io.Closer, error) {
	lvl := log.InfoLevel
	if level != "" {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
		}
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch path {
	case "":
		w = io.Discard
	case Stderr:
		w = os.Stderr
	default:
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, nil, fmt.Errorf("logging: create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- path comes from the CLI
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
		}
		w = f
		closer = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gnudash",
		Level:           lvl,
	})
	return logger, closer, nil
}
