// Package logging provides the shared structured logger.
//
// Output goes to stderr. While the TUI owns the terminal, ToFile redirects
// every logger to a file instead, including loggers created earlier.
// The level comes from SUPERTAB_LOG_LEVEL (debug, info, warn, error).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// LevelEnv is the environment variable read for the log level.
const LevelEnv = "SUPERTAB_LOG_LEVEL"

var (
	initLogger sync.Once
	baseLogger *slog.Logger
	output     = &switchWriter{w: os.Stderr}
)

// switchWriter lets the destination change after loggers are built.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) swap(w io.Writer) io.Writer {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.w
	s.w = w
	return prev
}

// ToFile sends all log output to path, appending. The returned func
// restores the previous destination and closes the file.
func ToFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	prev := output.swap(f)
	return func() error {
		output.swap(prev)
		return f.Close()
	}, nil
}

// New returns a logger tagged with component. An empty component returns the
// base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = newLogger(output, os.Getenv(LevelEnv))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// Discard returns a logger that drops everything. Useful in tests and for
// callers that pass no logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
