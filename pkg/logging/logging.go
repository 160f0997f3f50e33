package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
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

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo // Default to INFO for unknown
	}
}

var (
	consoleLogger *slog.Logger
	fileLogger    *slog.Logger
	fileHandle    *os.File
)

// InitForCLI initializes the logging system for console output.
// This should be called once at application startup.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	opts := &slog.HandlerOptions{
		Level: filterLevel.SlogLevel(),
	}
	consoleLogger = slog.New(slog.NewTextHandler(output, opts))
	slog.SetDefault(consoleLogger)
}

// AttachLogFile adds a secondary file sink that receives every entry at
// Debug level or above, independent of the console filter level. The file
// is opened in append mode and parent directories are created as needed.
func AttachLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("could not create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("could not open log file %s: %w", path, err)
	}
	fileHandle = f
	fileLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return nil
}

// CloseLogFile closes the file sink, if one was attached.
// Should be called on application shutdown.
func CloseLogFile() {
	if fileHandle != nil {
		fileHandle.Close()
		fileHandle = nil
		fileLogger = nil
	}
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	var slogAttrs []slog.Attr
	slogAttrs = append(slogAttrs, slog.String("subsystem", subsystem))
	if err != nil {
		slogAttrs = append(slogAttrs, slog.String("error", err.Error()))
	}

	if fileLogger != nil {
		fileLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, slogAttrs...)
	}

	if consoleLogger == nil {
		// Logger not initialized; fall back to stderr rather than dropping the entry.
		fmt.Fprintf(os.Stderr, "%s [%s] %s: %s\n", time.Now().Format(time.RFC3339), level, subsystem, msg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
		return
	}
	if !consoleLogger.Enabled(context.Background(), level.SlogLevel()) {
		return
	}
	consoleLogger.LogAttrs(context.Background(), level.SlogLevel(), msg, slogAttrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
