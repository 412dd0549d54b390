package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLBackend stores records in a key/value table on a networked MySQL
// server. Used instead of SQLite when a shared database is configured, e.g.
// when the same store is read by an off-site reporting machine.
type MySQLBackend struct {
	db *sql.DB
}

// NewMySQLBackend connects to MySQL using the given DSN and prepares the
// records table. The connection is pinged so an unreachable server fails the
// probe instead of failing the first read.
func NewMySQLBackend(dsn string) (*MySQLBackend, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	query := `
	CREATE TABLE IF NOT EXISTS records (
		record_key VARCHAR(191) PRIMARY KEY,
		record_value MEDIUMTEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create records table: %w", err)
	}

	log.Printf("[MySQLBackend] Initialized")
	return &MySQLBackend{db: db}, nil
}

// Read retrieves the document stored under key.
func (m *MySQLBackend) Read(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := m.db.QueryRowContext(ctx,
		`SELECT record_value FROM records WHERE record_key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return []byte(value), nil
}

// Write upserts the document stored under key.
func (m *MySQLBackend) Write(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO records (record_key, record_value, updated_at)
		VALUES (?, ?, NOW())
		ON DUPLICATE KEY UPDATE
			record_value = VALUES(record_value),
			updated_at = NOW()`

	if _, err := m.db.ExecContext(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

// Name returns the tier name.
func (m *MySQLBackend) Name() string { return "mysql" }

// Close closes the database connection.
func (m *MySQLBackend) Close() error {
	return m.db.Close()
}

var _ Backend = (*MySQLBackend)(nil)
