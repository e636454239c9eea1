// Package lumber is the logging layer of lcov-reporter. Tool output and
// pipeline progress go through a Logger backed by zap or logrus.
package lumber

import (
	"strings"

	"github.com/LambdaTest/lcov-reporter/pkg/errs"
)

// LoggingConfig selects the writers of the logger. Console goes to stdout,
// file output is rotated. Backends with a single level use ConsoleLevel.
type LoggingConfig struct {
	EnableConsole     bool
	ConsoleJSONFormat bool
	ConsoleLevel      string
	EnableFile        bool
	FileJSONFormat    bool
	FileLevel         string
	FileLocation      string
}

// Fields are key values attached to every entry of a derived logger.
type Fields map[string]interface{}

// Log levels understood by both backends.
const (
	Debug = "debug"
	Info  = "info"
	Warn  = "warn"
	Error = "error"
	Fatal = "fatal"
)

// Instance selects the logging backend.
type Instance int

// Supported backends.
const (
	InstanceZapLogger Instance = iota
	InstanceLogrusLogger
)

// ParseInstance maps a backend name to its Instance. Empty selects zap.
func ParseInstance(name string) (Instance, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "zap":
		return InstanceZapLogger, nil
	case "logrus":
		return InstanceLogrusLogger, nil
	default:
		return 0, errs.ErrInvalidLoggerInstance
	}
}

// Logger is the logging contract used across the reporter.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	// Warnf is used for recoverable problems, a failed comment post for one.
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	// Fatalf exits the process with status 1 after logging.
	Fatalf(format string, args ...interface{})
	Panicf(format string, args ...interface{})
	// WithFields returns a Logger adding fields to every entry.
	WithFields(keyValues Fields) Logger
}

// NewLogger builds the logger of the given backend. verbose forces the debug
// level on every writer.
func NewLogger(config LoggingConfig, verbose bool, instance Instance) (Logger, error) {
	switch instance {
	case InstanceZapLogger:
		return newZapLogger(config, verbose), nil
	case InstanceLogrusLogger:
		return newLogrusLogger(config, verbose)
	default:
		return nil, errs.ErrInvalidLoggerInstance
	}
}
