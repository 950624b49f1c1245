// Package logging is a small category-based wrapper over go.uber.org/zap:
// a registry of named loggers, one per subsystem, gated by a single
// zap.AtomicLevel rather than a workspace config file — this module has
// no workspace or session concept, just a Config (see internal/config)
// carrying a level.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a logging subsystem. Kept as a distinct type (rather
// than a bare string) so callers can't typo a category past the
// compiler.
type Category string

const (
	CategoryDatabase Category = "database"
	CategoryStepper  Category = "stepper"
	CategorySearch   Category = "search"
	CategoryCLI      Category = "cli"
)

var (
	mu      sync.RWMutex
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	base    *zap.Logger
	loggers = make(map[Category]*zap.Logger)
)

func init() {
	base = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(zapNopWriter{})),
		level,
	))
}

// SetLevel adjusts every category logger's verbosity in place (no logger
// needs to be re-fetched).
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// Level exposes the shared level enabler so a caller building its own
// zapcore.Core (the CLI entry point, wiring a real sink via SetOutput)
// can gate it by the same atomic level SetLevel adjusts.
func Level() zapcore.LevelEnabler {
	return level
}

// SetOutput redirects all subsequent logging to a real sink (os.Stderr,
// a file, etc). The CLI entry point calls this once at startup;
// the zero-value registry otherwise discards everything, which keeps
// package tests quiet by default.
func SetOutput(core zapcore.Core) {
	mu.Lock()
	defer mu.Unlock()
	base = zap.New(core)
	for c := range loggers {
		loggers[c] = base.With(zap.String("category", string(c)))
	}
}

// Get returns the logger for category, creating it on first use.
func Get(category Category) *zap.Logger {
	mu.RLock()
	l, ok := loggers[category]
	mu.RUnlock()
	if ok {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[category]; ok {
		return l
	}
	l = base.With(zap.String("category", string(category)))
	loggers[category] = l
	return l
}

type zapNopWriter struct{}

func (zapNopWriter) Write(p []byte) (int, error) { return len(p), nil }
