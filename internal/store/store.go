// Package store provides the SQLite file that backs vowbudget: keyed JSON
// documents (progression state, the current plan) and the event journal.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB wraps the SQLite handle.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// GetDocument decodes the document stored under key into v. It reports
// false when no document exists.
func (d *DB) GetDocument(key string, v any) (bool, error) {
	var body string
	err := d.db.QueryRow("SELECT body FROM documents WHERE storage_key = ?", key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// PutDocument stores v as JSON under key, replacing any previous document.
func (d *DB) PutDocument(key string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = d.db.Exec(`INSERT OR REPLACE INTO documents (storage_key, body, updated_at)
		VALUES (?, ?, ?)`, key, string(body), time.Now().UTC().Format(time.RFC3339))
	return err
}

// DeleteDocument removes the document stored under key.
func (d *DB) DeleteDocument(key string) error {
	_, err := d.db.Exec("DELETE FROM documents WHERE storage_key = ?", key)
	return err
}

// Reset deletes every document and event.
func (d *DB) Reset() error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM documents"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM events"); err != nil {
		return err
	}
	return tx.Commit()
}
