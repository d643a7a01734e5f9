package replacing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcaine/replacing/pkg/replacing/diagnostics"
	"github.com/mcaine/replacing/pkg/replacing/observability"
)

// Replacer renders text for one source object under a Policy.
//
// Replacer is a value: every toggle returns a new Replacer and leaves the
// receiver untouched. The source object, the other flags and the options
// given to Using carry over.
//
// The zero Replacer renders the zero value of T under the zero Policy, with
// every flag off, and without logging, metrics or tracing. Use Using to get
// DefaultPolicy.
type Replacer[T any] struct {
	source   T
	policy   Policy
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
	journal  diagnostics.Journal
	renderID string
}

// Using creates a Replacer for src with DefaultPolicy.
//
// Example:
//
//	out, err := replacing.Using(person).
//	    DontReplaceTagsIfValueNull().
//	    Render("My name is {name}", vocabulary)
func Using[T any](src T, opts ...Option) Replacer[T] {
	cfg := defaultReplacerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := Replacer[T]{
		source:   src,
		policy:   DefaultPolicy(),
		logger:   cfg.logger,
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
		journal:  cfg.journal,
		renderID: cfg.renderID,
	}
	if cfg.metrics {
		r.metrics = observability.NewMetricsRecorder()
	}
	if cfg.tracing {
		r.spans = observability.NewSpanManager()
	}
	return r
}

// Source returns the source object.
func (r Replacer[T]) Source() T {
	return r.source
}

// Policy returns the current policy.
func (r Replacer[T]) Policy() Policy {
	return r.policy
}

// WithPolicy returns a Replacer using p for all three flags.
func (r Replacer[T]) WithPolicy(p Policy) Replacer[T] {
	r.policy = p
	return r
}

// ReplaceTagsIfValueNull removes tags whose resolver yields no value.
func (r Replacer[T]) ReplaceTagsIfValueNull() Replacer[T] {
	r.policy = r.policy.WithReplaceIfNull(true)
	return r
}

// DontReplaceTagsIfValueNull leaves tags whose resolver yields no value.
func (r Replacer[T]) DontReplaceTagsIfValueNull() Replacer[T] {
	r.policy = r.policy.WithReplaceIfNull(false)
	return r
}

// ReplaceTagsIfValueBlank substitutes blank values.
func (r Replacer[T]) ReplaceTagsIfValueBlank() Replacer[T] {
	r.policy = r.policy.WithReplaceIfBlank(true)
	return r
}

// DontReplaceTagsIfValueBlank leaves tags whose value is blank.
func (r Replacer[T]) DontReplaceTagsIfValueBlank() Replacer[T] {
	r.policy = r.policy.WithReplaceIfBlank(false)
	return r
}

// CatchingErrors treats resolver failures as "no value".
func (r Replacer[T]) CatchingErrors() Replacer[T] {
	r.policy = r.policy.WithCatchErrors(true)
	return r
}

// NotCatchingErrors returns resolver failures to the caller.
func (r Replacer[T]) NotCatchingErrors() Replacer[T] {
	r.policy = r.policy.WithCatchErrors(false)
	return r
}

// Render applies set to text using the source object and policy.
// An uncaught resolver failure is returned as a *ResolverError.
func (r Replacer[T]) Render(text string, set Replacements[T]) (string, error) {
	return r.RenderContext(context.Background(), text, set)
}

// RenderText is Render for optional text: nil in, nil out.
func (r Replacer[T]) RenderText(text *string, set Replacements[T]) (*string, error) {
	if text == nil {
		return nil, nil
	}
	out, err := r.Render(*text, set)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RenderContext is Render with ctx carrying telemetry.
//
// ctx is used for spans and metrics only. Resolvers are not cancelled;
// a blocking resolver blocks the call.
func (r Replacer[T]) RenderContext(ctx context.Context, text string, set Replacements[T]) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	renderID := r.renderID
	if renderID == "" {
		renderID = uuid.New().String()
	}

	if r.metrics == nil {
		r.metrics = observability.NoopMetrics{}
	}
	if r.spans == nil {
		r.spans = observability.NoopSpanManager{}
	}

	ctx, span := r.spans.StartRenderSpan(ctx, renderID, set.Len())
	logger := observability.EnrichLogger(r.logger, renderID)
	observability.LogRenderStart(logger, set.Len())
	done := observability.TimedOperation()

	tr := &tracker{
		ctx:      ctx,
		renderID: renderID,
		logger:   logger,
		metrics:  r.metrics,
		spans:    r.spans,
		journal:  r.journal,
	}
	result, err := set.apply(r.source, text, r.policy, tr)

	elapsed := done()
	r.metrics.RecordRender(ctx, err == nil, elapsed)
	r.spans.EndSpanWithError(span, err)

	if err != nil {
		var resolverErr *ResolverError
		tag := ""
		if errors.As(err, &resolverErr) {
			tag = resolverErr.Tag
		}
		observability.LogRenderError(logger, err, durationMs(elapsed), tag)
		return "", err
	}

	observability.LogRenderComplete(logger, durationMs(elapsed), tr.substitutions, tr.failures)
	return result, nil
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
