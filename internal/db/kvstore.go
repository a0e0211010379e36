package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// KVStoreInterface is the persistence contract the services depend on.
// Single-key put/get is atomic; there are no cross-key transactions, and
// values are replaced wholesale on every put.
type KVStoreInterface interface {
	Close() error
	Put(key, value string) error
	Get(key string) (string, bool, error)
	Delete(key string) error
}

// KVStore is a sqlite-backed key-value store holding both the settings
// blobs (trusted list, roster) and the per-spelling location records.
type KVStore struct {
	db *sql.DB
}

// NewKVStore opens (and if needed initializes) the store at the given DSN.
func NewKVStore(dsn string) (*KVStore, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is required")
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Verify we can actually connect to the database
	if err := db.Ping(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("ping failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	if err := createTables(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("create tables failed: %w, close failed: %v", err, closeErr)
		}
		return nil, err
	}

	return &KVStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		)
	`)
	return err
}

func (s *KVStore) Close() error {
	if s == nil {
		return errors.New("store is nil")
	}

	if s.db == nil {
		return errors.New("store already closed")
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// Put writes value under key, replacing any previous value.
func (s *KVStore) Put(key, value string) error {
	if s == nil || s.db == nil {
		return errors.New("store is closed")
	}
	if key == "" {
		return errors.New("key is required")
	}

	_, err := s.db.Exec(`
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to put %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key; the second return is false when
// the key is absent.
func (s *KVStore) Get(key string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, errors.New("store is closed")
	}
	if key == "" {
		return "", false, errors.New("key is required")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv_entries WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, true, nil
}

// Delete removes key; deleting an absent key is not an error.
func (s *KVStore) Delete(key string) error {
	if s == nil || s.db == nil {
		return errors.New("store is closed")
	}
	if key == "" {
		return errors.New("key is required")
	}

	_, err := s.db.Exec("DELETE FROM kv_entries WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}
