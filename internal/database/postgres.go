package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"movie-explorer-service/internal/config"
)

// NewPostgres opens the PostgreSQL connection used as an optional catalog
// source. The movies table carries the same column contract as the CSV
// source; it is read once at startup and never written by this service.
func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)
	return db, nil
}
