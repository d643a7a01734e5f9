package diagnostics

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteJournal persists failures to SQLite.
// It is suitable for single-process production use.
type SQLiteJournal struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteJournal opens (or creates) a journal database.
// The path should be a file path (e.g., "./failures.db") or ":memory:" for testing.
func NewSQLiteJournal(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS failures (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			render_id TEXT NOT NULL,
			tag TEXT NOT NULL,
			message TEXT NOT NULL,
			panicked INTEGER NOT NULL,
			timestamp TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_failures_render_id
		ON failures(render_id)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteJournal{db: db}, nil
}

// Record implements Journal.
func (s *SQLiteJournal) Record(f Failure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrJournalClosed
	}

	ts := f.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO failures (render_id, tag, message, panicked, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, f.RenderID, f.Tag, f.Message, f.Panicked, ts.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("record failure: %w", err)
	}
	return nil
}

// List implements Journal.
func (s *SQLiteJournal) List(renderID string) ([]Failure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrJournalClosed
	}

	rows, err := s.db.Query(`
		SELECT tag, message, panicked, timestamp
		FROM failures
		WHERE render_id = ?
		ORDER BY id
	`, renderID)
	if err != nil {
		return nil, fmt.Errorf("list failures: %w", err)
	}
	defer rows.Close()

	failures := []Failure{}
	for rows.Next() {
		f := Failure{RenderID: renderID}
		var timestamp string
		if err := rows.Scan(&f.Tag, &f.Message, &f.Panicked, &timestamp); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		f.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		failures = append(failures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate failures: %w", err)
	}
	return failures, nil
}

// Count implements Journal.
func (s *SQLiteJournal) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrJournalClosed
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM failures`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count failures: %w", err)
	}
	return n, nil
}

// DeleteRender implements Journal.
func (s *SQLiteJournal) DeleteRender(renderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrJournalClosed
	}

	if _, err := s.db.Exec(`DELETE FROM failures WHERE render_id = ?`, renderID); err != nil {
		return fmt.Errorf("delete render failures: %w", err)
	}
	return nil
}

// Close implements Journal. Closing twice is a no-op.
func (s *SQLiteJournal) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
