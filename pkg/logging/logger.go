// Package logging configures the structured diagnostic logger.
//
// Diagnostics go to stderr so that stdout only carries command results.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// Config holds the configuration for the logger.
type Config struct {
	Level  LogLevel
	Format LogFormat

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig logs warnings and above as text to stderr.
func DefaultConfig() Config {
	return Config{
		Level:  LogLevelWarning,
		Format: LogFormatText,
	}
}

// Validate checks the Config for unsupported values.
func (c Config) Validate() error {
	switch c.Format {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// New creates a logrus logger from cfg.
func New(cfg Config) (*logrus.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := logrus.ParseLevel(string(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)

	switch cfg.Format {
	case LogFormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	case LogFormatText:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
			DisableColors:   true,
		})
	}

	return logger, nil
}

// Discard returns a logger that drops everything. Used when no logger has
// been configured, e.g. in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// ForRun returns an entry tagged with the command name and a fresh run_id.
func ForRun(logger logrus.FieldLogger, command string) *logrus.Entry {
	if logger == nil {
		logger = Discard()
	}
	return logger.WithFields(logrus.Fields{
		"command": command,
		"run_id":  uuid.NewString(),
	})
}
