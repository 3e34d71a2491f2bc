// Package logging is the leveled logger shared by glow and its helper packages.
//
// Messages are written through a single zerolog.Logger. The default output is a
// console writer on stderr; SetOutput swaps it for any io.Writer (a file, a test
// buffer, or a zerolog.ConsoleWriter of your own).
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Levels in decreasing order of severity. Critical maps onto zerolog's error level.
const (
	FatalLevel    = zerolog.FatalLevel
	CriticalLevel = zerolog.ErrorLevel
	WarningLevel  = zerolog.WarnLevel
	InfoLevel     = zerolog.InfoLevel
	DebugLevel    = zerolog.DebugLevel
)

var (
	mu     sync.RWMutex
	logger = newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}, InfoLevel)
)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetOutput replaces the destination of every subsequent message.
// A nil writer discards all output.
//
// Parameters:
//   - w: the destination writer
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, logger.GetLevel())
}

// SetLevel sets the minimum level that is written. Messages below it are dropped.
//
// Parameters:
//   - level: the verbosity threshold
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// Level returns the current verbosity threshold.
func Level() zerolog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return logger.GetLevel()
}

// Logger returns a copy of the current logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Component returns a logger that tags every message with the given component name.
//
// Parameters:
//   - name: the component name, e.g. "glow" or "glowwindow"
//
// Returns:
//   - zerolog.Logger: the tagged logger
func Component(name string) zerolog.Logger {
	l := Logger()
	return l.With().Str("component", name).Logger()
}

// Fatal starts a message at fatal level. Unlike zerolog's Fatal it does not exit the process.
func Fatal() *zerolog.Event {
	l := Logger()
	return l.WithLevel(FatalLevel)
}

// Critical starts a message at critical level.
func Critical() *zerolog.Event {
	l := Logger()
	return l.Error()
}

// Warning starts a message at warning level.
func Warning() *zerolog.Event {
	l := Logger()
	return l.Warn()
}

// Info starts a message at info level.
func Info() *zerolog.Event {
	l := Logger()
	return l.Info()
}

// Debug starts a message at debug level.
func Debug() *zerolog.Event {
	l := Logger()
	return l.Debug()
}
