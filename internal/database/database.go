package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB is the global database connection
var DB *sql.DB

// Config holds database configuration
type Config struct {
	Path string
}

// Open initializes the database connection and runs migrations
func Open(cfg Config) error {
	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	var err error
	DB, err = sql.Open("sqlite", cfg.Path+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := DB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// Run migrations
	if err := migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// migrate runs all database migrations
func migrate() error {
	// Create migrations table
	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Run each migration
	for _, m := range migrations {
		if err := runMigration(m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
	}

	return nil
}

type migration struct {
	name string
	up   string
}

func runMigration(m migration) error {
	// Check if already applied
	var count int
	err := DB.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", m.name).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // Already applied
	}

	// Run migration
	if _, err := DB.Exec(m.up); err != nil {
		return err
	}

	// Record migration
	_, err = DB.Exec("INSERT INTO migrations (name) VALUES (?)", m.name)
	return err
}

var migrations = []migration{
	{
		name: "001_create_accounts",
		up: `
			CREATE TABLE accounts (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_accounts_username ON accounts(username);
		`,
	},
	{
		name: "002_create_assets",
		up: `
			CREATE TABLE assets (
				id TEXT PRIMARY KEY,
				owner TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				name TEXT NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX idx_assets_owner ON assets(owner);
		`,
	},
	{
		name: "003_create_sessions",
		up: `
			CREATE TABLE sessions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL,
				token_hash TEXT NOT NULL UNIQUE,
				created_at DATETIME NOT NULL,
				expires_at DATETIME NOT NULL
			);
			CREATE INDEX idx_sessions_token_hash ON sessions(token_hash);
			CREATE INDEX idx_sessions_expires_at ON sessions(expires_at);
		`,
	},
}
