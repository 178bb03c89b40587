// Package token persists the single bearer credential the console holds.
// The sqlite store survives process restarts; the memory store backs tests
// and ephemeral runs. Only the session service writes here.
package token

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// tokenName is the fixed key the bearer token lives under. There is never
// more than one row with this name.
const tokenName = "token"

const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// SQLiteStore keeps the token in a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("token store: open %s: %w", path, err)
	}
	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("token store: init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Set overwrites any previously stored token. Token contents are opaque and
// not validated.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		tokenName, token)
	if err != nil {
		return fmt.Errorf("token store: set: %w", err)
	}
	return nil
}

// Get reports the stored token. Any failure, including an unreadable
// database, is reported as absent rather than surfaced.
func (s *SQLiteStore) Get(ctx context.Context) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE name = ?`, tokenName).Scan(&value)
	if err != nil {
		// sql.ErrNoRows and genuine storage failures look the same to
		// callers: no usable token.
		return "", false
	}
	return value, true
}

// Clear removes the stored token. Deleting an absent row is a no-op, so the
// call is idempotent.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE name = ?`, tokenName); err != nil {
		return fmt.Errorf("token store: clear: %w", err)
	}
	return nil
}
