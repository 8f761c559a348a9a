package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// ParseCompleted logs a successful parse and projection
func (l *Logger) ParseCompleted(file string, components, slides int) {
	l.Debug("parse completed",
		"file", file,
		"components", components,
		"slides", slides)
}

// RenderStarted logs the start of a render call
func (l *Logger) RenderStarted(file, rendererURL string) {
	l.Info("render started",
		"file", file,
		"renderer", rendererURL)
}

// RenderCompleted logs a successful render call
func (l *Logger) RenderCompleted(file string, slides int, duration time.Duration) {
	l.Info("render completed",
		"file", file,
		"slides", slides,
		"duration", duration.Round(time.Millisecond))
}

// RenderError logs a failed render call
func (l *Logger) RenderError(file string, err error) {
	l.Error("render failed",
		"file", file,
		"error", err)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// StateError logs a state-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(rendererURL string, interval time.Duration) {
	l.Debug("config loaded",
		"renderer", rendererURL,
		"interval", interval)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}

// WatchTick logs one pass of the watch loop
func (l *Logger) WatchTick(file string, changed bool) {
	l.Debug("watch tick",
		"file", file,
		"changed", changed)
}
