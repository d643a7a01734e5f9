package replacing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/mcaine/replacing/pkg/replacing/diagnostics"
	"github.com/mcaine/replacing/pkg/replacing/observability"
)

// outcome labels what a replacement did to the text.
type outcome string

const (
	outcomeValue   outcome = "value"
	outcomeBlank   outcome = "blank"
	outcomeRemoved outcome = "removed"
	outcomeKept    outcome = "kept"
)

// tracker routes the diagnostics of a single render.
// It is owned by one render and never shared.
type tracker struct {
	ctx      context.Context
	renderID string
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	journal  diagnostics.Journal

	substitutions int
	failures      int
}

// defaultTracker is used by Apply outside of a Replacer.
func defaultTracker() *tracker {
	return &tracker{
		ctx:     context.Background(),
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

func (t *tracker) resolverFailed(tag string, err error, caught bool) {
	t.metrics.RecordResolverFailure(t.ctx, caught)
	t.spans.AddSpanEvent(t.ctx, "resolver.failed",
		attribute.String("tag", tag),
		attribute.Bool("caught", caught),
	)
	if !caught {
		return
	}

	t.failures++
	observability.LogResolverFailure(t.logger, tag, err)

	if t.journal == nil {
		return
	}
	var panicErr *PanicError
	f := diagnostics.Failure{
		RenderID:  t.renderID,
		Tag:       tag,
		Message:   err.Error(),
		Panicked:  errors.As(err, &panicErr),
		Timestamp: time.Now().UTC(),
	}
	if jerr := t.journal.Record(f); jerr != nil {
		observability.LogJournalError(t.logger, tag, jerr)
	}
}

func (t *tracker) substituted(tag string, o outcome) {
	if o != outcomeKept {
		t.substitutions++
	}
	t.metrics.RecordSubstitution(t.ctx, string(o))
}
