package tokenstore

import (
	"context"
	"database/sql"
	"errors"

	"nivlek-client/internal/app/contracts"
	"nivlek-client/internal/pkg/constvars"
	"nivlek-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type sqliteTokenStore struct {
	DB  *sql.DB
	Log *zap.Logger
}

// NewSQLiteTokenStore creates the backing table on first use. The store is a
// flat key-value table: one row per storage key, no TTL column and no expiry
// sweep, so a token persists until explicitly removed.
func NewSQLiteTokenStore(db *sql.DB, logger *zap.Logger) (contracts.TokenStore, error) {
	_, err := db.ExecContext(context.Background(),
		`CREATE TABLE IF NOT EXISTS tokens (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return nil, exceptions.ErrStoreOpen(err)
	}
	return &sqliteTokenStore{DB: db, Log: logger}, nil
}

func (s *sqliteTokenStore) Set(ctx context.Context, key, value string) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO tokens (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		s.Log.Error("sqliteTokenStore.Set failed",
			zap.String(constvars.LoggingStoreKeyKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStoreSet(err)
	}
	return nil
}

func (s *sqliteTokenStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM tokens WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.Log.Error("sqliteTokenStore.Get failed",
			zap.String(constvars.LoggingStoreKeyKey, key),
			zap.Error(err),
		)
		return "", exceptions.ErrStoreGet(err)
	}
	return value, nil
}

func (s *sqliteTokenStore) Remove(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM tokens WHERE key = ?`, key)
	if err != nil {
		s.Log.Error("sqliteTokenStore.Remove failed",
			zap.String(constvars.LoggingStoreKeyKey, key),
			zap.Error(err),
		)
		return exceptions.ErrStoreRemove(err)
	}
	return nil
}
