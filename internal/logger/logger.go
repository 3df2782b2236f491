// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation once app.log can grow past a few MB.

var (
	defaultLogger *slog.Logger
	level         = new(slog.LevelVar) // Info by default
	logFile       *os.File
)

// getLogFilePath determines the path for the application log file under XDG_STATE_HOME.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "contacts", "app.log"), nil
}

// openLogFile creates the log directory and opens the log file for appending.
func openLogFile() (*os.File, string, error) {
	logFilePath, err := getLogFilePath()
	if err != nil {
		return nil, "", fmt.Errorf("error determining log file path: %w", err)
	}
	logDir := filepath.Dir(logFilePath)
	// Create directory with appropriate permissions (0750: user rwx, group rx, others ---)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, logFilePath, fmt.Errorf("error creating log directory %s: %w", logDir, err)
	}
	// Open file for appending (0640: user rw, group r, others ---)
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, logFilePath, fmt.Errorf("error opening log file %s: %w", logFilePath, err)
	}
	return file, logFilePath, nil
}

// setupLogging configures the default logger based on whether to log to file and/or stderr.
func setupLogging(logToFile bool, logToStderr bool) (string, error) {
	var writers []io.Writer
	var path string

	if logToFile {
		file, p, err := openLogFile()
		if err != nil {
			if !logToStderr {
				// Without a file the TUI has nowhere safe to log; drop output rather
				// than corrupt the screen.
				defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: level}))
				return "", err
			}
			fmt.Fprintf(os.Stderr, "%v. File logging disabled.\n", err)
		} else {
			writers = append(writers, file)
			logFile = file
			path = p
		}
	}

	if logToStderr {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	// Using JSON handler for structured logging consistency.
	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)
	return path, nil
}

// InitLogger initializes the logger based on the execution mode (TUI or CLI).
// It MUST be called once at the beginning of the application.
func InitLogger(isTUI bool) {
	logToStderr := !isTUI // Log to stderr only if NOT TUI

	path, err := setupLogging(true, logToStderr)
	if err != nil {
		if isTUI {
			fmt.Fprintf(os.Stderr, "Logger initialization failed: %v. Logging disabled.\n", err)
		}
		return
	}
	Debug("Logging configured.", "file", path, "stderr", logToStderr)
}

// Close flushes and closes the log file if one was opened.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// SetLevel changes the minimum level that is written. Unknown names leave the level untouched.
func SetLevel(name string) error {
	switch strings.ToLower(name) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "", "info":
		level.Set(slog.LevelInfo)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level %q", name)
	}
	return nil
}

// SetLogger allows replacing the default logger instance, mostly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		defaultLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	checkLogger()
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}
