package diagnostics

import (
	"sync"
	"time"
)

// MemoryJournal keeps failures in memory.
// Data is lost when the process exits.
type MemoryJournal struct {
	mu       sync.RWMutex
	byRender map[string][]Failure
	count    int
	closed   bool
}

// NewMemoryJournal creates an empty in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{
		byRender: make(map[string][]Failure),
	}
}

// Record implements Journal.
func (m *MemoryJournal) Record(f Failure) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrJournalClosed
	}
	if f.Timestamp.IsZero() {
		f.Timestamp = time.Now().UTC()
	}
	m.byRender[f.RenderID] = append(m.byRender[f.RenderID], f)
	m.count++
	return nil
}

// List implements Journal.
func (m *MemoryJournal) List(renderID string) ([]Failure, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrJournalClosed
	}
	failures := m.byRender[renderID]
	out := make([]Failure, len(failures))
	copy(out, failures)
	return out, nil
}

// Count implements Journal.
func (m *MemoryJournal) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return 0, ErrJournalClosed
	}
	return m.count, nil
}

// DeleteRender implements Journal.
func (m *MemoryJournal) DeleteRender(renderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrJournalClosed
	}
	m.count -= len(m.byRender[renderID])
	delete(m.byRender, renderID)
	return nil
}

// Close implements Journal. Closing twice is a no-op.
func (m *MemoryJournal) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.byRender = nil
	return nil
}
