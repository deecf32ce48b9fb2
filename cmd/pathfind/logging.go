package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const defaultLogFile = "~/.pathfind/pathfind.log"

// nopCloser closes nothing.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds a logger writing to w at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathfind",
		Level:           lvl,
	})
	return logger, nil
}

// openLogFile opens path for appending, creating parent directories.
// A leading ~ expands to the home directory. An empty path discards output.
func openLogFile(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		return io.Discard, nopCloser{}, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("log file: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("log file: cannot create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return f, f, nil
}
