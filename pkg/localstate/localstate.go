// Package localstate provides the device-local key-value persistence used
// for same-device form recovery: one snapshot key written opportunistically
// while the user types, and one one-shot handoff key with peek-and-consume
// semantics for "continue editing this draft now".
//
// Backed by SQLite so the data survives process restarts on the same
// device. All operations are synchronous and callers treat failures as
// best-effort (logged, never user-visible).
package localstate

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Well-known keys.
const (
	KeySnapshot = "snapshot"
	KeyHandoff  = "handoff"
)

// Store is a small SQLite-backed key-value store.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the local store at the given SQLite
// DSN, e.g. "file:formflow-local.sqlite?_pragma=busy_timeout(5000)" or an
// in-memory DSN for tests.
func Open(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("dsn is empty")
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		saved_at DATETIME NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, saved_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, saved_at = excluded.saved_at`,
		key, value, time.Now().UTC())
	return err
}

// Get returns the value under key and whether it was present.
func (s *Store) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// TakeOnce reads and deletes key in one transaction: the read implies the
// delete, so a value is observed by at most one caller.
func (s *Store) TakeOnce(key string) ([]byte, bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = tx.Rollback() }()

	var value []byte
	err = tx.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	if _, err := tx.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return nil, false, err
	}
	if err := tx.Commit(); err != nil {
		return nil, false, err
	}
	return value, true, nil
}
