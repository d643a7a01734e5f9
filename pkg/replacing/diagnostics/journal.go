// Package diagnostics records resolver failures that a render caught and
// downgraded to "no value".
package diagnostics

import (
	"errors"
	"time"
)

// Failure is one caught resolver failure.
type Failure struct {
	RenderID  string
	Tag       string
	Message   string
	Panicked  bool
	Timestamp time.Time
}

// Journal stores caught failures.
// Implementations must be safe for concurrent use.
type Journal interface {
	// Record stores a failure.
	Record(f Failure) error

	// List returns the failures of a render in the order they were recorded.
	// Returns empty slice (not error) if the render has none.
	List(renderID string) ([]Failure, error)

	// Count returns the number of stored failures across all renders.
	Count() (int, error)

	// DeleteRender removes all failures of a render.
	// Returns nil if the render has none.
	DeleteRender(renderID string) error

	// Close releases any resources (connections, files).
	Close() error
}

// ErrJournalClosed indicates the journal has been closed.
var ErrJournalClosed = errors.New("diagnostics journal closed")
