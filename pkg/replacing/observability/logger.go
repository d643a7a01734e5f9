// Package observability provides logging, metrics and tracing helpers
// for replacing renders.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds the render ID to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "6f1c...")
//	enriched.Warn("something odd") // includes render_id
func EnrichLogger(logger *slog.Logger, renderID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("render_id", renderID))
}

// LogRenderStart logs the start of a render.
func LogRenderStart(logger *slog.Logger, replacements int) {
	if logger == nil {
		return
	}
	logger.Debug("render starting",
		slog.Int("replacements", replacements),
	)
}

// LogRenderComplete logs a successful render.
func LogRenderComplete(logger *slog.Logger, durationMs float64, substitutions, caughtFailures int) {
	if logger == nil {
		return
	}
	logger.Debug("render completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("substitutions", substitutions),
		slog.Int("caught_failures", caughtFailures),
	)
}

// LogRenderError logs a render aborted by an uncaught resolver failure.
func LogRenderError(logger *slog.Logger, err error, durationMs float64, tag string) {
	if logger == nil {
		return
	}
	logger.Error("render failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
		slog.String("tag", tag),
	)
}

// LogResolverFailure logs a resolver failure that was caught and
// downgraded to "no value".
func LogResolverFailure(logger *slog.Logger, tag string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("resolver failed",
		slog.String("tag", tag),
		slog.String("error", err.Error()),
	)
}

// LogJournalError logs a failure to record in the diagnostics journal (non-fatal).
func LogJournalError(logger *slog.Logger, tag string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("journal record failed",
		slog.String("tag", tag),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
