package jsonschemaform

import "runtime"

// Option configures the validation engine and compiler.
type Option func(*Options)

// Options holds configuration shared by the compiler and the engine.
// Keyword checkers themselves are configured at construction time and
// never consult Options.
type Options struct {
	// WholeStringPattern anchors compiled pattern keywords to the whole
	// string instead of the default partial match.
	WholeStringPattern bool

	// MetaSchemaCheck validates schema documents against the official
	// draft meta-schema before compiling them.
	MetaSchemaCheck bool

	// ParallelAsync dispatches async checker branches concurrently instead
	// of awaiting them in order.
	ParallelAsync bool

	// WorkerCount is the number of workers for batch validation.
	WorkerCount int

	// PatternCacheSize bounds the compiled-regexp cache.
	PatternCacheSize int

	// SchemaCacheSize bounds the compiled-schema cache.
	SchemaCacheSize int

	// CollectMetrics enables validation metric collection.
	CollectMetrics bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		WholeStringPattern: false,
		MetaSchemaCheck:    false,
		ParallelAsync:      false,
		WorkerCount:        runtime.NumCPU(),
		PatternCacheSize:   256,
		SchemaCacheSize:    128,
		CollectMetrics:     true,
	}
}

// WithWholeStringPattern anchors pattern keywords to the whole string.
func WithWholeStringPattern(enable bool) Option {
	return func(o *Options) {
		o.WholeStringPattern = enable
	}
}

// WithMetaSchemaCheck validates schema documents against the draft
// meta-schema before compiling.
func WithMetaSchemaCheck(enable bool) Option {
	return func(o *Options) {
		o.MetaSchemaCheck = enable
	}
}

// WithParallelAsync runs async checker branches concurrently. Checkers are
// pure and read-only, so parallel dispatch changes timing only.
func WithParallelAsync(enable bool) Option {
	return func(o *Options) {
		o.ParallelAsync = enable
	}
}

// WithWorkerCount sets the number of workers for batch validation.
// Defaults to runtime.NumCPU().
func WithWorkerCount(count int) Option {
	return func(o *Options) {
		if count > 0 {
			o.WorkerCount = count
		}
	}
}

// WithCacheSize configures the compiled pattern and schema cache sizes.
// The schema cache is per-validator; the pattern cache is shared by the
// whole process, so the largest size any validator requests wins.
func WithCacheSize(patterns, schemas int) Option {
	return func(o *Options) {
		if patterns > 0 {
			o.PatternCacheSize = patterns
		}
		if schemas > 0 {
			o.SchemaCacheSize = schemas
		}
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}

// --- Presets ---

// StrictOptions returns options for strict validation: whole-string
// patterns and meta-schema checking of schema documents.
func StrictOptions() []Option {
	return []Option{
		WithWholeStringPattern(true),
		WithMetaSchemaCheck(true),
	}
}

// FastOptions returns options optimized for throughput.
func FastOptions() []Option {
	return []Option{
		WithMetaSchemaCheck(false),
		WithParallelAsync(true),
		WithCacheSize(1024, 512),
	}
}

// DebugOptions returns options useful for debugging.
func DebugOptions() []Option {
	return []Option{
		WithMetrics(true),
		WithWorkerCount(1),
	}
}
