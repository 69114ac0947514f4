package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteBackend persists collection snapshots in a single SQLite table. The
// write model stays whole-collection replace; SQLite only supplies durable,
// transactional storage for the snapshots.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at path and prepares the
// snapshots table
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS collections (
			name TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create collections table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Close closes the underlying database
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Load returns the stored snapshot for a collection
func (b *SQLiteBackend) Load(collection string) ([]byte, bool, error) {
	var data string
	err := b.db.QueryRow("SELECT data FROM collections WHERE name = ?", collection).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %s: %w", collection, err)
	}
	return []byte(data), true, nil
}

// Save replaces the stored snapshot for a collection
func (b *SQLiteBackend) Save(collection string, data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		collection, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", collection, err)
	}
	return nil
}
