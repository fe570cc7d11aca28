// Package logging provides a small leveled logger over the standard log package.
package logging

import (
	"io"
	"log"
	"os"
	"strings"
)

// Level selects which messages a Logger writes.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Logger is a leveled wrapper over the standard logger. Everything goes to
// stderr because stdout carries answers and the MCP stream.
type Logger struct {
	level       Level
	debugLogger *log.Logger
	infoLogger  *log.Logger
	errorLogger *log.Logger
}

// New returns a Logger writing to stderr at the given level.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter returns a Logger writing to w.
func NewWithWriter(level string, w io.Writer) *Logger {
	flags := log.Ldate | log.Ltime
	return &Logger{
		level:       ParseLevel(level),
		debugLogger: log.New(w, "DEBUG: ", flags),
		infoLogger:  log.New(w, "INFO: ", flags),
		errorLogger: log.New(w, "ERROR: ", flags),
	}
}

// NewDiscard returns a Logger that drops everything.
func NewDiscard() *Logger {
	return NewWithWriter(string(LevelError), io.Discard)
}

// ParseLevel maps a level name to a Level. Unknown names mean info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Debug(format string, v ...any) {
	if l.level != LevelDebug {
		return
	}
	l.debugLogger.Printf(format, v...)
}

func (l *Logger) Info(format string, v ...any) {
	if l.level == LevelError {
		return
	}
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Error(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}
