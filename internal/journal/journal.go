// Package journal records dispatched requests in a local SQLite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS requests (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		received_at   TEXT NOT NULL,
		kind          TEXT NOT NULL,
		target_window INTEGER NOT NULL DEFAULT 0,
		content       TEXT NOT NULL DEFAULT '',
		payload_bytes INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		message       TEXT NOT NULL DEFAULT '',
		duration_us   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS requests_received_at ON requests (received_at)`,
}

// Entry is one dispatched request and its outcome.
type Entry struct {
	ID           int64
	ReceivedAt   time.Time
	Kind         string
	TargetWindow uint64
	Content      string
	PayloadBytes int
	Success      bool
	Message      string
	Duration     time.Duration
}

// Store is a SQLite-backed request journal.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the journal at path and runs migrations.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create journal dir: %w", err)
	}

	// modernc.org/sqlite applies each _pragma on every new connection.
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	for _, stmt := range migrations {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("journal migration: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record appends e. A zero ReceivedAt is stamped with the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.ReceivedAt.IsZero() {
		e.ReceivedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO requests (received_at, kind, target_window, content, payload_bytes, success, message, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ReceivedAt.UTC().Format(time.RFC3339Nano), e.Kind, int64(e.TargetWindow), e.Content,
		e.PayloadBytes, boolToInt(e.Success), e.Message, e.Duration.Microseconds())
	if err != nil {
		return fmt.Errorf("record request: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, received_at, kind, target_window, content, payload_bytes, success, message, duration_us
		 FROM requests ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			received string
			target   int64
			success  int
			duration int64
		)
		if err := rows.Scan(&e.ID, &received, &e.Kind, &target, &e.Content, &e.PayloadBytes, &success, &e.Message, &duration); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		e.ReceivedAt, err = time.Parse(time.RFC3339Nano, received)
		if err != nil {
			return nil, fmt.Errorf("request %d received_at: %w", e.ID, err)
		}
		e.TargetWindow = uint64(target)
		e.Success = success != 0
		e.Duration = time.Duration(duration) * time.Microsecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the number of recorded requests.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM requests`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
