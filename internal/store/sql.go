package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLStore persists slots in a single two-column table through database/sql.
// The statements run unchanged on SQLite (modernc.org/sqlite) and Postgres
// (lib/pq): both accept $1 placeholders and ON CONFLICT upserts.
type SQLStore struct {
	DB *sql.DB
}

// NewSQLStore wraps an open database handle. Call EnsureSchema before use.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

// EnsureSchema creates the slots table if it does not exist.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS slots (
			slot TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create slots table: %w", err)
	}
	return nil
}

func (s *SQLStore) Get(ctx context.Context, slot string) (string, bool, error) {
	query := `
		SELECT value FROM slots WHERE slot = $1
	`
	var value string
	err := s.DB.QueryRowContext(ctx, query, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStore) Put(ctx context.Context, slot, value string) error {
	query := `
		INSERT INTO slots (slot, value)
		VALUES ($1, $2)
		ON CONFLICT (slot) DO UPDATE SET value = excluded.value
	`
	_, err := s.DB.ExecContext(ctx, query, slot, value)
	return err
}

func (s *SQLStore) Delete(ctx context.Context, slot string) error {
	query := `
		DELETE FROM slots WHERE slot = $1
	`
	_, err := s.DB.ExecContext(ctx, query, slot)
	return err
}
