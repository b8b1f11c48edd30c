// Package logger provides leveled, structured logging for the math
// expression formatter. Log entries go to a file and optionally to the
// console; before Init is called all logging is a no-op so library code
// and tests can log unconditionally.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log message
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field represents a key-value pair for structured logging
type Field struct {
	Key   string
	Value interface{}
}

// String creates a string field
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an integer field
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Bool creates a boolean field
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Config holds the configuration for the logger
type Config struct {
	// LogFilePath is the path to the log file
	LogFilePath string
	// Level is the minimum log level to output
	Level Level
	// EnableConsole enables output to stdout in addition to the file
	EnableConsole bool
}

// DefaultConfig returns a default logger configuration
func DefaultConfig() *Config {
	return &Config{
		LogFilePath:   "math-expression-formatter.log",
		Level:         LevelInfo,
		EnableConsole: false,
	}
}

// FileLogger writes timestamped entries to a log file.
type FileLogger struct {
	mu     sync.Mutex
	file   *os.File
	out    io.Writer
	level  Level
	closed bool
}

// New creates a FileLogger with the given configuration.
func New(config *Config) (*FileLogger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if dir := filepath.Dir(config.LogFilePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(config.LogFilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var out io.Writer = file
	if config.EnableConsole {
		out = io.MultiWriter(file, os.Stdout)
	}

	return &FileLogger{file: file, out: out, level: config.Level}, nil
}

// SetLevel sets the minimum log level.
func (l *FileLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Close flushes and closes the underlying log file.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || l.file == nil {
		return nil
	}
	l.closed = true
	return l.file.Close()
}

// Debug logs a debug message with optional fields.
func (l *FileLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields...) }

// Info logs an informational message with optional fields.
func (l *FileLogger) Info(msg string, fields ...Field) { l.log(LevelInfo, msg, fields...) }

// Warn logs a warning message with optional fields.
func (l *FileLogger) Warn(msg string, fields ...Field) { l.log(LevelWarn, msg, fields...) }

// Error logs an error message with the causing error and optional fields.
func (l *FileLogger) Error(msg string, err error, fields ...Field) {
	if err != nil {
		fields = append(fields, Err(err))
	}
	l.log(LevelError, msg, fields...)
}

func (l *FileLogger) log(level Level, msg string, fields ...Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || level < l.level {
		return
	}
	fmt.Fprintf(l.out, "%s [%s] %s%s\n",
		time.Now().Format("2006-01-02 15:04:05.000"), level, msg, formatFields(fields))
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s=%v", f.Key, f.Value))
	}
	sort.Strings(parts)
	return " | " + strings.Join(parts, " ")
}

// Package-level default logger. Nil until Init succeeds; all the
// package-level functions check for that and fall through silently.
var (
	defaultMu     sync.RWMutex
	defaultLogger *FileLogger
)

// Init initializes the package-level logger.
func Init(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	if defaultLogger != nil {
		defaultLogger.Close()
	}
	defaultLogger = l
	defaultMu.Unlock()
	return nil
}

// Close closes the package-level logger.
func Close() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		return nil
	}
	err := defaultLogger.Close()
	defaultLogger = nil
	return err
}

func active() *FileLogger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// Debug logs a debug message on the package-level logger.
func Debug(msg string, fields ...Field) {
	if l := active(); l != nil {
		l.Debug(msg, fields...)
	}
}

// Info logs an informational message on the package-level logger.
func Info(msg string, fields ...Field) {
	if l := active(); l != nil {
		l.Info(msg, fields...)
	}
}

// Warn logs a warning message on the package-level logger.
func Warn(msg string, fields ...Field) {
	if l := active(); l != nil {
		l.Warn(msg, fields...)
	}
}

// Error logs an error message on the package-level logger.
func Error(msg string, err error, fields ...Field) {
	if l := active(); l != nil {
		l.Error(msg, err, fields...)
	}
}
