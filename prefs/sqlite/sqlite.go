// Package sqlite provides a durable, sqlite-backed implementation of
// prefs.Store for deployments that want preferences to survive process
// restarts without an external service. It uses the pure Go driver so no
// cgo toolchain is required.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/atelierhq/agentpulse/prefs"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Store is a prefs.Store backed by a single sqlite kv table.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the kv
// table exists. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open preferences db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init preferences schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the stored value or prefs.ErrNotFound.
func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", prefs.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read preference %q: %w", key, err)
	}
	return value, nil
}

// Set upserts the value for the key.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("write preference %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
