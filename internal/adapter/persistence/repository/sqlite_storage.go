package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"salesdesk/internal/usecase/interfaces"

	_ "modernc.org/sqlite"
)

const defaultSQLitePath = "./data/salesdesk.db"

// SQLiteStorage keeps the serialized collections in a single key/value
// table, giving the stores durable storage without an external service.
type SQLiteStorage struct {
	db *sql.DB
}

var _ interfaces.IStorageAdapter = (*SQLiteStorage)(nil)

func NewSQLiteStorage(ctx context.Context) (*SQLiteStorage, error) {
	dsn := getenvDefault("SQLITE_PATH", defaultSQLitePath)
	return NewSQLiteStorageAt(ctx, dsn)
}

func NewSQLiteStorageAt(ctx context.Context, dsn string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SQLiteStorage{db: db}, nil
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
