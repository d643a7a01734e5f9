package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}

	t.Run("does not panic with valid args", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordRender(context.Background(), true, time.Millisecond)
			m.RecordSubstitution(context.Background(), "value")
			m.RecordResolverFailure(context.Background(), true)
		})
	})

	t.Run("does not panic with nil context", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordRender(nil, false, 0)
			m.RecordSubstitution(nil, "")
			m.RecordResolverFailure(nil, false)
		})
	})
}

func TestNoopSpanManager(t *testing.T) {
	m := NoopSpanManager{}

	t.Run("returns context unchanged", func(t *testing.T) {
		ctx := context.Background()
		newCtx, span := m.StartRenderSpan(ctx, "r", 3)
		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("end and events do not panic", func(t *testing.T) {
		_, span := m.StartRenderSpan(context.Background(), "r", 0)
		assert.NotPanics(t, func() {
			m.AddSpanEvent(context.Background(), "resolver.failed", attribute.String("tag", "{t}"))
			m.EndSpanWithError(span, errors.New("x"))
			m.EndSpanWithError(nil, nil)
		})
	})
}
