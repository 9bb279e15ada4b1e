// Package logger writes structured logs to the configured log file so
// diagnostics never mix with command output on stdout.
package logger

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/neofinance/neofin/pkg/config"
)

var logger *log.Logger

// Init initializes the logger. Verbose enables debug level and caller
// reporting. Falls back to stderr when the log file cannot be opened.
func Init(verbose bool) {
	logLevel := log.InfoLevel
	if verbose {
		logLevel = log.DebugLevel
	}

	var out *os.File
	logFile := config.GetString("log.file")
	if logFile != "" {
		os.MkdirAll(filepath.Dir(logFile), 0700)
		if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600); err == nil {
			out = f
		}
	}
	if out == nil {
		out = os.Stderr
	}

	logger = log.NewWithOptions(out, log.Options{
		Prefix:          "neofin",
		Level:           logLevel,
		ReportTimestamp: true,
		ReportCaller:    verbose,
	})
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
}

// Info logs an info message
func Info(msg string, args ...interface{}) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning message
func Warn(msg string, args ...interface{}) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message
func Error(msg string, args ...interface{}) {
	if logger != nil {
		logger.Error(msg, args...)
	}
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...interface{}) {
	if logger != nil {
		logger.Fatal(msg, args...)
	} else {
		os.Exit(1)
	}
}

// GetLogger returns the logger instance
func GetLogger() *log.Logger {
	return logger
}
