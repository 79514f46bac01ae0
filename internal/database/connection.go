// Package database stores the attempt history behind the statistics view.
// It supports SQLite for local use and PostgreSQL for hosted deployments.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Connect opens the attempt history database and initializes its schema.
// DB_TYPE selects the driver: "sqlite" (the default, file taken from
// DATABASE_PATH) or "postgres" (DSN taken from DATABASE_URL).
func Connect() (*sqlx.DB, error) {
	if os.Getenv("DB_TYPE") == "postgres" {
		return connectPostgres()
	}
	return connectSQLite()
}

func connectPostgres() (*sqlx.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func connectSQLite() (*sqlx.DB, error) {
	path := os.Getenv("DATABASE_PATH")
	if path == "" {
		path = filepath.Join("data", "trainer.db")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %v", err)
		}
	}
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
	}
	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initializeSchema creates the attempts table if it doesn't exist
func initializeSchema(db *sqlx.DB) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS attempts (
			id %s,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL DEFAULT 0,
			total_questions INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			percent INTEGER NOT NULL,
			passed BOOLEAN NOT NULL,
			attempt_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, idColumn)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create attempts table: %v", err)
	}
	return nil
}
