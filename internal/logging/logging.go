// Copyright 2018 The go-zeromq Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the leveled logger used by the z85 tools.
// The codec itself never logs.
package logging

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Level represents different logging levels
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" into a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "", "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	case "TRACE":
		return LevelTrace, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Logger provides structured logging with levels
type Logger struct {
	logger *log.Logger
	level  Level
}

// NewWithWriter creates a new Logger with custom writer and level
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(w, "z85: ", log.LstdFlags),
		level:  level,
	}
}

// IsEnabled checks if a log level is enabled
func (l *Logger) IsEnabled(level Level) bool {
	return level <= l.level
}

func (l *Logger) printf(level Level, format string, args ...interface{}) {
	if l.IsEnabled(level) {
		l.logger.Printf("["+level.String()+"] "+format, args...)
	}
}

// Error logs at error level
func (l *Logger) Error(format string, args ...interface{}) { l.printf(LevelError, format, args...) }

// Warn logs at warning level
func (l *Logger) Warn(format string, args ...interface{}) { l.printf(LevelWarn, format, args...) }

// Info logs at info level
func (l *Logger) Info(format string, args ...interface{}) { l.printf(LevelInfo, format, args...) }

// Debug logs at debug level
func (l *Logger) Debug(format string, args ...interface{}) { l.printf(LevelDebug, format, args...) }

// Trace logs at trace level (most verbose)
func (l *Logger) Trace(format string, args ...interface{}) { l.printf(LevelTrace, format, args...) }

// Discard is a logger that drops all output.
var Discard = NewWithWriter(io.Discard, LevelError)
