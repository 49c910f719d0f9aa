package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/aditya9960/poc-voting-system/cliparse"
)

// Open connects to the configured database and verifies the connection.
// For SQLite it also enables WAL mode and foreign key enforcement, and
// limits the pool to a single connection as the driver recommends.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := dbConn.Ping(); err != nil {
			dbConn.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		return dbConn, nil

	case "sqlite":
		dbConn, err := sql.Open("sqlite", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if _, err := dbConn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			dbConn.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
		if _, err := dbConn.Exec("PRAGMA foreign_keys=ON"); err != nil {
			dbConn.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
		dbConn.SetMaxOpenConns(1)
		if err := dbConn.Ping(); err != nil {
			dbConn.Close()
			return nil, fmt.Errorf("ping sqlite: %w", err)
		}
		return dbConn, nil

	default:
		return nil, fmt.Errorf("unknown database type: %q", cfg.DatabaseType)
	}
}
