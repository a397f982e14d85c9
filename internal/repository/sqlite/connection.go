package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"inkwell/internal/domain/repositories"

	_ "modernc.org/sqlite"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	DB     *sql.DB
	Logger *slog.Logger
}

// Open opens (creating if needed) the writing store database inside
// dataDir and bootstraps the schema.
//
// The store is a single shared resource serving one interactive user,
// so the pool is pinned to a single connection. That keeps the
// connection-scoped pragmas in force for every statement and matches
// the last-writer-wins mutation model.
func Open(dataDir string) (*sql.DB, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "writer.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", p, err)
		}
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration: %w", err)
	}

	return db, nil
}

// migrate creates the schema if it does not exist. Cascade deletes are
// pushed into the engine: removing a work or a node removes every
// dependent row through the foreign keys.
func migrate(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS works (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMP NOT NULL,
			updated_at  TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS nodes (
			id         TEXT PRIMARY KEY,
			work_id    TEXT NOT NULL REFERENCES works(id) ON DELETE CASCADE,
			parent_id  TEXT REFERENCES nodes(id) ON DELETE CASCADE,
			kind       TEXT NOT NULL,
			title      TEXT NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_nodes_work_id ON nodes(work_id);
		CREATE INDEX IF NOT EXISTS idx_nodes_parent_id ON nodes(parent_id);

		CREATE TABLE IF NOT EXISTS contents (
			id         TEXT PRIMARY KEY,
			node_id    TEXT NOT NULL UNIQUE REFERENCES nodes(id) ON DELETE CASCADE,
			content    TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL
		);

		CREATE TABLE IF NOT EXISTS versions (
			id         TEXT PRIMARY KEY,
			node_id    TEXT NOT NULL REFERENCES nodes(id) ON DELETE CASCADE,
			label      TEXT NOT NULL,
			content    TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_versions_node_id ON versions(node_id);

		CREATE TABLE IF NOT EXISTS prompt_templates (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			content    TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// GetExecutor returns the appropriate query executor for the context.
// If a transaction is present in the context, it returns the
// transaction. Otherwise, it returns the provided database handle.
// This enables repositories to automatically participate in
// transactions when they exist.
func GetExecutor(ctx context.Context, db *sql.DB) repositories.DBTX {
	if tx := repositories.GetTx(ctx); tx != nil {
		return tx
	}
	return db
}
