package replacing

import (
	"log/slog"

	"github.com/mcaine/replacing/pkg/replacing/diagnostics"
)

// replacerConfig holds the collaborators chosen by Options.
type replacerConfig struct {
	logger   *slog.Logger
	metrics  bool
	tracing  bool
	journal  diagnostics.Journal
	renderID string
}

// defaultReplacerConfig logs to slog.Default() and disables telemetry.
func defaultReplacerConfig() replacerConfig {
	return replacerConfig{
		logger: slog.Default(),
	}
}

// Option configures a Replacer.
type Option func(*replacerConfig)

// WithLogger sets the logger caught resolver failures are reported to.
// Default: slog.Default(). A nil logger disables logging.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	r := replacing.Using(person, replacing.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(c *replacerConfig) {
		c.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
// Default: false
func WithMetrics(enabled bool) Option {
	return func(c *replacerConfig) {
		c.metrics = enabled
	}
}

// WithTracing enables OpenTelemetry tracing using the global tracer provider.
// Default: false
func WithTracing(enabled bool) Option {
	return func(c *replacerConfig) {
		c.tracing = enabled
	}
}

// WithJournal records every caught resolver failure in j.
// A journal that fails to record never changes the rendered text;
// the journal error is logged and dropped.
func WithJournal(j diagnostics.Journal) Option {
	return func(c *replacerConfig) {
		c.journal = j
	}
}

// WithRenderID fixes the ID attached to logs, spans and journal entries.
// Default: a fresh UUID per render.
func WithRenderID(id string) Option {
	return func(c *replacerConfig) {
		c.renderID = id
	}
}
