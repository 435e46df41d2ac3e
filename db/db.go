package db

import (
	"database/sql"
	"os"

	_ "github.com/lib/pq"
)

// Open returns a pooled connection shared by all requests. Handlers never
// open or close connections themselves.
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	return conn, nil
}

// ApplySchema creates the users and plants tables if they do not exist yet.
func ApplySchema(conn *sql.DB) error {
	sqlBytes, err := os.ReadFile("schema.sql")
	if err != nil {
		return err
	}

	_, err = conn.Exec(string(sqlBytes))
	return err
}

// EnsureLightLevel backfills the light_level column on databases created
// before the column existed. Exposed through /update_db_light.
func EnsureLightLevel(conn *sql.DB) error {
	_, err := conn.Exec("ALTER TABLE plants ADD COLUMN IF NOT EXISTS light_level REAL;")
	return err
}
