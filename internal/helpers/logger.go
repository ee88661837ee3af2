package helpers

import (
	"io"
	"log"
	"os"
)

// Logger provides simplified logging with prefixes
type Logger struct {
	prefix string
	l      *log.Logger
}

// NewLogger creates a new logger with a prefix writing to stderr
func NewLogger(prefix string) *Logger {
	return NewLoggerTo(os.Stderr, prefix)
}

// NewLoggerTo creates a new logger with a prefix writing to w
func NewLoggerTo(w io.Writer, prefix string) *Logger {
	return &Logger{prefix: "[" + prefix + "]", l: log.New(w, "", log.LstdFlags)}
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...interface{}) {
	l.l.Printf("%s INFO: %s %v", l.prefix, msg, args)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.l.Printf("%s WARN: %s %v", l.prefix, msg, args)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, args ...interface{}) {
	l.l.Printf("%s ERROR: %s - %v %v", l.prefix, msg, err, args)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.l.Printf("%s DEBUG: %s %v", l.prefix, msg, args)
}
