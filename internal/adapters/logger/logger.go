// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/refract-dev/refract/internal/core/domain"
	"github.com/refract-dev/refract/internal/core/ports"
	"go.trai.ch/zerr"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error. If
// zerr's API changes, errors fall back to standard error handling.
type messager interface {
	Message() string
}

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger    *slog.Logger
	mu        sync.RWMutex
	jsonMode  bool
	output    io.Writer
	debugFile *os.File
}

// New creates a new Logger instance writing pretty output to stderr.
func New() ports.Logger {
	l := &Logger{output: os.Stderr}
	l.logger = slog.New(l.newHandler())
	return l
}

// newHandler builds the slog handler for the current output and mode.
// Callers must hold the lock (or be the constructor).
func (l *Logger) newHandler() slog.Handler {
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var primary slog.Handler
	if l.jsonMode {
		primary = slog.NewJSONHandler(w, opts)
	} else {
		primary = NewPrettyHandler(w, opts)
	}
	if l.debugFile == nil {
		return primary
	}
	debug := slog.NewJSONHandler(l.debugFile, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &teeHandler{primary: primary, debug: debug}
}

// SetOutput updates the logger's output destination, preserving the
// current JSON mode. If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(l.newHandler())
}

// SetDebugFile mirrors every record to an append-only JSON log at path,
// replacing any previously configured file. An empty path stops mirroring.
// The file is created private since log records may quote project source.
func (l *Logger) SetDebugFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.debugFile != nil {
		_ = l.debugFile.Close()
		l.debugFile = nil
	}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create debug log directory"), "path", path)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.PrivateFilePerm)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to open debug log file"), "path", path)
		}
		l.debugFile = f
	}

	l.logger = slog.New(l.newHandler())
	return nil
}

// SetJSON switches between JSON and pretty logging, preserving the output
// destination.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.logger = slog.New(l.newHandler())
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error. In pretty mode wrapped zerr chains are rendered
// hierarchically, one cause per line.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatChain(err))
}

// formatChain collects messages along the error chain and formats them as
// a main error followed by indented causes.
func formatChain(err error) string {
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: raw message without the chain
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			// Standard error: full Error() and stop
			messages = append(messages, current.Error())
			break
		}
	}

	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		switch i {
		case 0:
			lines = append(lines, "Error: "+parts[0])
			for _, p := range parts[1:] {
				lines = append(lines, "       "+p)
			}
		default:
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+parts[0])
			for _, p := range parts[1:] {
				lines = append(lines, "      "+p)
			}
		}
	}

	return strings.Join(lines, "\n")
}
