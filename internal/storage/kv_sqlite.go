package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SqliteKV backs the KVStore interface with a single-table SQLite database.
type SqliteKV struct {
	conn *sqlx.DB
}

func NewSqliteKV(path string) (*SqliteKV, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	s := &SqliteKV{conn: conn}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}

	return s, nil
}

func (s *SqliteKV) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	);`
	_, err := s.conn.Exec(schema)
	return err
}

func (s *SqliteKV) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := s.conn.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("selecting %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SqliteKV) Put(key string, value []byte) error {
	_, err := s.conn.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("upserting %q: %w", key, err)
	}
	return nil
}

func (s *SqliteKV) Delete(key string) error {
	_, err := s.conn.Exec(`DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting %q: %w", key, err)
	}
	return nil
}

func (s *SqliteKV) Close() error {
	return s.conn.Close()
}
