// Package db provides PostgreSQL persistence for users and evaluation
// results.
package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'user',
	password_hash TEXT NOT NULL DEFAULT '',
	password_set BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const evaluationsSchema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	user_email TEXT,
	final_score INTEGER NOT NULL,
	missing_skills JSONB NOT NULL DEFAULT '[]',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const evaluationsEmailIndex = `
CREATE INDEX IF NOT EXISTS idx_evaluations_user_email ON evaluations (user_email)`

// CreateSchema creates the users and evaluations tables if they do not exist.
func (db *DB) CreateSchema(ctx context.Context) error {
	for _, stmt := range []string{usersSchema, evaluationsSchema, evaluationsEmailIndex} {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
