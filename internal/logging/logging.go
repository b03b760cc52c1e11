// Package logging provides the file-based diagnostic log of timelog,
// written to <data_dir>/logs/timelog.log.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Path returns the log file location under dataDir.
func Path(dataDir string) string {
	return filepath.Join(dataDir, "logs", "timelog.log")
}

// Open returns a logger appending to the log file and a function closing it.
// If the file cannot be opened, a discarding logger is returned with the error.
func Open(dataDir string, level slog.Level) (*slog.Logger, func() error, error) {
	path := Path(dataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return Discard(), noop, fmt.Errorf("create logs directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return Discard(), noop, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}

// New returns a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

func noop() error { return nil }
