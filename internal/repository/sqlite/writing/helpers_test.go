package writing

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	models "inkwell/internal/domain/models/writing"
	"inkwell/internal/repository/sqlite"
)

// newTestDB opens a throwaway writing store in a temp directory.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func newTestConfig(t *testing.T) *sqlite.RepositoryConfig {
	t.Helper()
	return &sqlite.RepositoryConfig{
		DB:     newTestDB(t),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// mustCreateWork seeds a work row and returns its ID.
func mustCreateWork(t *testing.T, config *sqlite.RepositoryConfig) string {
	t.Helper()

	repo := NewWorkRepository(config)
	work := &models.Work{Name: "Test Work"}
	if err := repo.Create(context.Background(), work); err != nil {
		t.Fatalf("failed to create work: %v", err)
	}
	return work.ID
}

// mustCreateNode seeds a node row under the work and returns its ID.
func mustCreateNode(t *testing.T, config *sqlite.RepositoryConfig, workID string, parentID *string, kind models.NodeKind, title string, sortOrder int) string {
	t.Helper()

	repo := NewNodeRepository(config)
	node := &models.Node{
		WorkID:    workID,
		ParentID:  parentID,
		Kind:      kind,
		Title:     title,
		SortOrder: sortOrder,
	}
	if err := repo.Create(context.Background(), node); err != nil {
		t.Fatalf("failed to create node %q: %v", title, err)
	}
	return node.ID
}

// countRows counts the rows of a table matching a single-column filter.
func countRows(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return count
}
