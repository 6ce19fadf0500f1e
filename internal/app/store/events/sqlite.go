// internal/app/store/events/sqlite.go
package eventstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dalemusser/eventhub/internal/domain/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_id ON events(id);
`

// SQLiteStore keeps the list in a SQLite table. Deletes run in a
// transaction; duplicate ids are allowed and all removed together.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens dsn with the modernc driver. An in-memory database is
// private to one connection, so the pool is capped at one.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

// DB exposes the underlying handle.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Migrate creates the events table if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}
	return nil
}

// Seed inserts seed when the table is empty. It returns the number of rows
// inserted.
func (s *SQLiteStore) Seed(ctx context.Context, seed []models.EventRef) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	for _, e := range seed {
		if _, err := tx.ExecContext(ctx, `INSERT INTO events (id) VALUES (?)`, e.ID); err != nil {
			return 0, fmt.Errorf("failed to seed event %q: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	return len(seed), nil
}

// List returns entries in insertion order.
func (s *SQLiteStore) List(ctx context.Context) ([]models.EventRef, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM events ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var out []models.EventRef
	for rows.Next() {
		var e models.EventRef
		if err := rows.Scan(&e.ID); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return out, nil
}

// Delete removes every row whose id equals id.
func (s *SQLiteStore) Delete(ctx context.Context, id string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin delete: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete event %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit delete: %w", err)
	}
	return int(n), nil
}

// Ping checks the connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
