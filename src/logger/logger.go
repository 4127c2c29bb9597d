// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and output redirection.
//
// This interface supports both CLI and service modes, allowing seamless
// switching between human-readable output and structured logging.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// Format selects the ServiceLogger line format.
type Format string

const (
	// FormatText writes logfmt-style key=value lines.
	FormatText Format = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// ServiceLogger implements Logger on top of a [logrus.Logger].
// Printf and Println log at info level; Entry exposes the underlying
// logger for leveled and field-tagged output.
//
// ServiceLogger is safe for concurrent use by multiple goroutines.
type ServiceLogger struct{ logger *logrus.Logger }

// NewServiceLogger creates a service logger writing to w.
//
// Parameters:
//   - w: Destination for log lines (nil means os.Stderr)
//   - level: logrus level name such as "debug", "info" or "warn"
//   - format: FormatText or FormatJSON
//
// Returns:
//   - *ServiceLogger: Configured logger
//   - error: If level or format is not recognized
func NewServiceLogger(w io.Writer, level string, format Format) (*ServiceLogger, error) {
	if w == nil {
		w = os.Stderr
	}

	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)

	switch format {
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	case FormatText, "":
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}

	return &ServiceLogger{logger: l}, nil
}

// Printf logs a formatted message at info level.
func (s *ServiceLogger) Printf(format string, v ...any) { s.logger.Infof(format, v...) }

// Println logs a message at info level.
func (s *ServiceLogger) Println(v ...any) { s.logger.Infoln(v...) }

// SetOutput sets the output destination for the service logger.
func (s *ServiceLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.logger.SetOutput(w)
}

// Entry returns a logrus entry for leveled, field-tagged logging.
func (s *ServiceLogger) Entry() *logrus.Entry { return logrus.NewEntry(s.logger) }
