package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger printf-style logger used across the service.
// Writes to stdout and, if a file is configured, to the file as well.
type Logger struct {
	slog *slog.Logger
	file *os.File
	out  io.Writer
}

// New creates a logger writing to stdout and the given file.
// An empty file path disables file output. Supported levels: debug, info, warn, error.
func New(file, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out io.Writer = os.Stdout
		f   *os.File
	)

	if file != "" {
		if dir := filepath.Dir(file); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}

		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, f)
	}

	return NewWithWriter(out, lvl, f), nil
}

// NewWithWriter creates a logger on top of an arbitrary writer.
// closer may be nil.
func NewWithWriter(out io.Writer, level slog.Level, closer *os.File) *Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return &Logger{
		slog: slog.New(handler),
		file: closer,
		out:  out,
	}
}

// Nop returns a logger that discards everything. Handy in tests.
func Nop() *Logger {
	return NewWithWriter(io.Discard, slog.LevelError+1, nil)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.slog.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.slog.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.slog.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...))
}

// Fatal logs the message and terminates the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...))
	l.Close()
	os.Exit(1)
}

// Println satisfies gorilla/handlers.RecoveryHandlerLogger.
func (l *Logger) Println(v ...interface{}) {
	l.slog.Error(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Writer exposes the raw output, used for HTTP access logs.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// Close closes the log file if one was opened.
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", level)
	}
}
