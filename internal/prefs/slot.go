package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Slot is a durable key-value store holding string values.
type Slot interface {
	Get(key string) (value string, ok bool, err error)
	Set(key string, value string) error
}

// MemorySlot keeps values in process memory.
type MemorySlot struct {
	values map[string]string
}

// NewMemorySlot returns an empty MemorySlot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

func (m *MemorySlot) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemorySlot) Set(key string, value string) error {
	m.values[key] = value
	return nil
}

// FileSlot stores all keys in a single JSON object file.
type FileSlot struct {
	Path string
}

// NewFileSlot returns a FileSlot backed by path.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{Path: path}
}

func (f *FileSlot) load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.Path, err)
	}
	values := map[string]string{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.Path, err)
	}
	return values, nil
}

func (f *FileSlot) Get(key string) (string, bool, error) {
	values, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set rewrites the file with key updated. A corrupt file is replaced.
func (f *FileSlot) Set(key string, value string) error {
	values, err := f.load()
	if err != nil {
		values = map[string]string{}
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling slot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("creating slot directory: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing slot: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replacing slot: %w", err)
	}
	return nil
}

// SQLiteSlot stores values in a kv table of a SQLite database.
type SQLiteSlot struct {
	db *sql.DB
}

// OpenSQLiteSlot opens (creating if needed) the database at path.
func OpenSQLiteSlot(ctx context.Context, path string) (*SQLiteSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating slot directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}
	return &SQLiteSlot{db: db}, nil
}

func (s *SQLiteSlot) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteSlot) Set(key string, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
