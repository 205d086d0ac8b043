package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Init opens the Postgres connection pool and verifies it with a ping.
func Init(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("database connection could not be opened: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, nil
}
