// Package logger provides structured, leveled logging for the library.
//
// It is a thin facade over log/slog with package-level functions so that
// store implementations and the registry can log without threading a logger
// through every constructor. Output defaults to text on stderr; callers
// embedding the library can reconfigure or silence it with Init.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config holds logger configuration.
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or a file path
}

var (
	mu       sync.RWMutex
	output   io.Writer = os.Stderr
	format             = "text"
	levelVar           = func() *slog.LevelVar {
		lv := new(slog.LevelVar)
		lv.Set(slog.LevelInfo)
		return lv
	}()
	slogger = newLogger(os.Stderr, "text", levelVar)
)

func newLogger(w io.Writer, format string, level *slog.LevelVar) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// reconfigure rebuilds the slog logger from the current settings.
// Callers must hold mu.
func reconfigure() {
	slogger = newLogger(output, format, levelVar)
}

// Init reconfigures the logger. Empty fields keep their current setting.
// Output can be "stdout", "stderr", or a file path (opened for append).
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToLower(cfg.Output) {
	case "":
		// keep current output
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.Output, err)
		}
		output = f
	}

	setLevel(cfg.Level)

	if f := strings.ToLower(cfg.Format); f == "text" || f == "json" {
		format = f
	}

	reconfigure()
	return nil
}

// InitWithWriter points the logger at a custom writer.
// This is primarily useful for testing.
func InitWithWriter(w io.Writer, level, logFormat string) {
	mu.Lock()
	defer mu.Unlock()

	output = w
	setLevel(level)
	if f := strings.ToLower(logFormat); f == "text" || f == "json" {
		format = f
	}
	reconfigure()
}

// SetLevel sets the minimum log level. Invalid levels are ignored.
func SetLevel(level string) {
	mu.Lock()
	defer mu.Unlock()
	setLevel(level)
}

func setLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		levelVar.Set(slog.LevelDebug)
	case "INFO":
		levelVar.Set(slog.LevelInfo)
	case "WARN":
		levelVar.Set(slog.LevelWarn)
	case "ERROR":
		levelVar.Set(slog.LevelError)
	}
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return slogger
}

// Debug logs at debug level with structured fields.
// Usage: Debug("message", "key1", value1, "key2", value2)
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Info logs at info level with structured fields.
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Warn logs at warn level with structured fields.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}

// Error logs at error level with structured fields.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}
