package domain

import (
	"io"
	"time"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations. Diagnostics and regular output
// share the same stream.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)
}

// LineReader reads one line of input per call, showing prompt first.
// It returns io.EOF when no more input is available.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Outcome classifies how a dispatched line ended.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeArgumentError Outcome = "argument_error"
	OutcomeFailed        Outcome = "failed"
)

// HistoryEntry is one recorded input line.
type HistoryEntry struct {
	ID        int64
	SessionID string
	Line      string
	Command   string
	Outcome   Outcome
	CreatedAt time.Time
}

// HistoryStore records executed lines.
type HistoryStore interface {
	// Append records one line.
	Append(entry HistoryEntry) error

	// Recent returns up to limit entries, oldest first.
	Recent(limit int) ([]HistoryEntry, error)

	// Lines returns up to limit raw input lines, oldest first.
	Lines(limit int) ([]string, error)

	// Close closes the store connection.
	Close() error
}
