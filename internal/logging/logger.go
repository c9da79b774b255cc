// Package logging provides categorized logging for promptforge, built on
// zap. Before Initialize is called every helper is a no-op, so library
// code can log unconditionally and embedders that never initialize
// logging pay nothing.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names one subsystem's log stream.
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config, wiring
	CategoryLexicon  Category = "lexicon"  // Local correction
	CategoryAnalysis Category = "analysis" // Slot detection and defaulting
	CategoryEnrich   Category = "enrich"   // Remote enrichment calls
	CategoryEnhance  Category = "enhance"  // Orchestration
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	sugared = make(map[Category]*zap.SugaredLogger)
)

// Initialize builds the shared logger. level is a zap level name
// ("debug", "info", "warn", "error"); file is an output path, or "" for
// stderr. Safe to call more than once; the last call wins.
func Initialize(level, file string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	root = logger
	sugared = make(map[Category]*zap.SugaredLogger)
	return nil
}

// Get returns the named sugared logger for a category.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if s, ok := sugared[category]; ok {
		mu.RUnlock()
		return s
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if s, ok := sugared[category]; ok {
		return s
	}
	s := root.Named(string(category)).Sugar()
	sugared[category] = s
	return s
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = root.Sync()
}

// Per-category printf helpers.

func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Infof(format, args...)
}

func BootDebug(format string, args ...interface{}) {
	Get(CategoryBoot).Debugf(format, args...)
}

func BootError(format string, args ...interface{}) {
	Get(CategoryBoot).Errorf(format, args...)
}

func Lexicon(format string, args ...interface{}) {
	Get(CategoryLexicon).Infof(format, args...)
}

func LexiconDebug(format string, args ...interface{}) {
	Get(CategoryLexicon).Debugf(format, args...)
}

func Analysis(format string, args ...interface{}) {
	Get(CategoryAnalysis).Infof(format, args...)
}

func AnalysisDebug(format string, args ...interface{}) {
	Get(CategoryAnalysis).Debugf(format, args...)
}

func Enrich(format string, args ...interface{}) {
	Get(CategoryEnrich).Infof(format, args...)
}

func EnrichDebug(format string, args ...interface{}) {
	Get(CategoryEnrich).Debugf(format, args...)
}

func EnrichError(format string, args ...interface{}) {
	Get(CategoryEnrich).Errorf(format, args...)
}

func Enhance(format string, args ...interface{}) {
	Get(CategoryEnhance).Infof(format, args...)
}

func EnhanceDebug(format string, args ...interface{}) {
	Get(CategoryEnhance).Debugf(format, args...)
}

func EnhanceWarn(format string, args ...interface{}) {
	Get(CategoryEnhance).Warnf(format, args...)
}

func EnhanceError(format string, args ...interface{}) {
	Get(CategoryEnhance).Errorf(format, args...)
}
