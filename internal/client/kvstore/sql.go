package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/habitkeeper/internal/dbx"
)

type queries struct {
	get    string
	set    string
	delete string
	list   string
	clear  string
}

var sqliteQueries = queries{
	get: `SELECT value FROM kv WHERE key = ?`,
	set: `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
	delete: `DELETE FROM kv WHERE key = ?`,
	list:   `SELECT key, value FROM kv`,
	clear:  `DELETE FROM kv`,
}

var postgresQueries = queries{
	get: `SELECT value FROM kv WHERE key = $1`,
	set: `INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
	delete: `DELETE FROM kv WHERE key = $1`,
	list:   `SELECT key, value FROM kv`,
	clear:  `DELETE FROM kv`,
}

// SQLStore implements Store on a single kv table.
type SQLStore struct {
	db *sql.DB
	q  queries
}

// NewSQLiteStore wraps an already-migrated SQLite handle.
func NewSQLiteStore(db *sql.DB) *SQLStore {
	return newSQLStore(db, sqliteQueries)
}

// NewPostgresStore wraps an already-migrated PostgreSQL handle.
func NewPostgresStore(db *sql.DB) *SQLStore {
	return newSQLStore(db, postgresQueries)
}

func newSQLStore(db *sql.DB, q queries) *SQLStore {
	return &SQLStore{db: db, q: q}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, s.db, s.q, key)
}

func get(ctx context.Context, db dbx.DBTX, q queries, key string) ([]byte, error) {
	var value []byte
	err := db.QueryRowContext(ctx, q.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, s.db, s.q, key, value)
}

func set(ctx context.Context, db dbx.DBTX, q queries, key string, value []byte) error {
	if _, err := db.ExecContext(ctx, q.set, key, string(value)); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.q.delete, key); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := s.db.QueryContext(ctx, s.q.list)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}

	return result, nil
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.q.clear); err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (s *SQLStore) Replace(ctx context.Context, snapshot map[string][]byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, s.q.clear); err != nil {
			return fmt.Errorf("failed to clear kv: %w", err)
		}
		for k, v := range snapshot {
			if err := set(ctx, tx, s.q, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
