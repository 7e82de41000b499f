package repository

import (
	"context"
	"database/sql"
	"errors"

	"aiseek/internal/database"
)

// SQLKVStore keeps keys in the kv_store table of any supported dialect
type SQLKVStore struct {
	db *database.DB
}

func NewSQLKVStore(db *database.DB) *SQLKVStore {
	return &SQLKVStore{db: db}
}

// Get retrieves a value by key
func (r *SQLKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	query := `SELECT store_value FROM kv_store WHERE store_key = ?`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set updates or inserts a value
func (r *SQLKVStore) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, r.db.Dialect.UpsertKV(), key, value)
	return err
}

func (r *SQLKVStore) Close() error {
	return r.db.Close()
}
