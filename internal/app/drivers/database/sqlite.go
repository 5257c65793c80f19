package database

import (
	"context"
	"database/sql"
	"fmt"

	"nivlek-client/internal/app/config"

	_ "modernc.org/sqlite"
)

// NewSQLiteDB opens the token-store database file, creating it on first use.
func NewSQLiteDB(driverConfig *config.DriverConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", driverConfig.SQLite.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// SQLite handles one writer at a time; the store is tiny.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
