package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresConfig holds the connection settings for the postgres backend.
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c PostgresConfig) dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// PostgresBackend stores each collection document as one row of a
// key-value table. Put replaces the whole document, matching the
// read-modify-write model of the callers.
type PostgresBackend struct {
	db *sql.DB
}

// NewPostgresBackend opens the pool, verifies connectivity and makes sure
// the key-value table exists.
func NewPostgresBackend(ctx context.Context, cfg PostgresConfig) (*PostgresBackend, error) {
	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS attendance_kv (
		key TEXT PRIMARY KEY,
		doc JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure attendance_kv table: %w", err)
	}

	return &PostgresBackend{db: db}, nil
}

func (pb *PostgresBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var doc []byte
	err := pb.db.QueryRowContext(ctx,
		`SELECT doc FROM attendance_kv WHERE key = $1`, key).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (pb *PostgresBackend) Put(ctx context.Context, key string, doc []byte) error {
	_, err := pb.db.ExecContext(ctx,
		`INSERT INTO attendance_kv (key, doc, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		key, doc)
	return err
}

// Close releases the connection pool.
func (pb *PostgresBackend) Close() error {
	return pb.db.Close()
}
