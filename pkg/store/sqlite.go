package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteFile = "todo.sqlite"

const createBlobs = `CREATE TABLE IF NOT EXISTS blobs (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLitePath returns the database file used under basePath.
func SQLitePath(basePath string) string {
	return filepath.Join(basePath, sqliteFile)
}

// SQLite keeps blobs in a single-table sqlite database.
type SQLite struct {
	conn *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure database directory: %w", err)
	}
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	if _, err := conn.Exec(createBlobs); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("store: creating blobs table: %w", err)
	}
	return &SQLite{conn: conn, path: path}, nil
}

func (s *SQLite) Read(key string) ([]byte, error) {
	var val []byte
	err := s.conn.QueryRow(`SELECT value FROM blobs WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", key, err)
	}
	return val, nil
}

func (s *SQLite) Write(key string, value []byte) error {
	_, err := s.conn.Exec(`INSERT INTO blobs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("store: writing %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.conn.Close()
}

func (s *SQLite) Name() string {
	return BackendSQLite
}

func (s *SQLite) Location() string {
	return s.path
}
