package writing

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/domain"
	models "inkwell/internal/domain/models/writing"
)

func TestNodeRepository_CreateWithMissingParent(t *testing.T) {
	config := newTestConfig(t)
	repo := NewNodeRepository(config)
	workID := mustCreateWork(t, config)

	missing := "no-such-parent"
	node := &models.Node{
		WorkID:   workID,
		ParentID: &missing,
		Kind:     models.KindChapter,
		Title:    "Orphan",
	}
	err := repo.Create(context.Background(), node)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a missing parent, got %v", err)
	}
}

func TestNodeRepository_Rename(t *testing.T) {
	config := newTestConfig(t)
	repo := NewNodeRepository(config)
	ctx := context.Background()

	workID := mustCreateWork(t, config)
	nodeID := mustCreateNode(t, config, workID, nil, models.KindChapter, "Old Title", 1)

	renamed, err := repo.Rename(ctx, nodeID, "New Title")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if !renamed {
		t.Error("expected renamed=true")
	}

	got, err := repo.GetByID(ctx, nodeID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "New Title" {
		t.Errorf("title = %q, want New Title", got.Title)
	}

	renamed, err = repo.Rename(ctx, "no-such-node", "X")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed {
		t.Error("expected renamed=false for a missing node")
	}
}

func TestNodeRepository_DeleteCascadesToSubtree(t *testing.T) {
	config := newTestConfig(t)
	nodeRepo := NewNodeRepository(config)
	contentRepo := NewContentRepository(config)
	versionRepo := NewVersionRepository(config)
	ctx := context.Background()

	workID := mustCreateWork(t, config)
	rootID := mustCreateNode(t, config, workID, nil, models.KindWorkContent, "Manuscript", 1)
	volumeID := mustCreateNode(t, config, workID, &rootID, models.KindVolume, "Volume 1", 1)
	chapterID := mustCreateNode(t, config, workID, &volumeID, models.KindChapter, "Chapter 1", 1)
	siblingID := mustCreateNode(t, config, workID, nil, models.KindWorkSettings, "Settings", 0)

	if err := contentRepo.Upsert(ctx, chapterID, "text"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	version := &models.Version{NodeID: chapterID, Label: "20240101T000000", Content: "older text"}
	if err := versionRepo.Insert(ctx, version); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	deleted, err := nodeRepo.Delete(ctx, rootID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("expected deleted=true")
	}

	// The whole subtree and its dependent rows are gone, transitively.
	for _, id := range []string{rootID, volumeID, chapterID} {
		if _, err := nodeRepo.GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("node %s survived the cascade: %v", id, err)
		}
	}
	if _, exists, _ := contentRepo.Get(ctx, chapterID); exists {
		t.Error("chapter content survived the cascade")
	}
	if n := countRows(t, config.DB, `SELECT COUNT(*) FROM versions WHERE node_id = ?`, chapterID); n != 0 {
		t.Errorf("%d versions survived the cascade", n)
	}

	// Rows outside the subtree stay.
	if _, err := nodeRepo.GetByID(ctx, siblingID); err != nil {
		t.Errorf("sibling outside the subtree was deleted: %v", err)
	}

	// Deleting again reports absence, no error.
	deleted, err = nodeRepo.Delete(ctx, rootID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for an already-deleted node")
	}
}

func TestNodeRepository_ListRowsJoinsContent(t *testing.T) {
	config := newTestConfig(t)
	nodeRepo := NewNodeRepository(config)
	contentRepo := NewContentRepository(config)
	ctx := context.Background()

	workID := mustCreateWork(t, config)
	otherWorkID := mustCreateWork(t, config)

	rootID := mustCreateNode(t, config, workID, nil, models.KindWorkContent, "Manuscript", 1)
	chapterID := mustCreateNode(t, config, workID, &rootID, models.KindChapter, "Chapter 1", 1)
	mustCreateNode(t, config, otherWorkID, nil, models.KindWorkContent, "Other", 1)

	if err := contentRepo.Upsert(ctx, chapterID, "chapter text"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	rows, err := nodeRepo.ListRows(ctx, workID)
	if err != nil {
		t.Fatalf("ListRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for the work, got %d", len(rows))
	}

	byID := make(map[string]models.NodeRow)
	for _, row := range rows {
		byID[row.ID] = row
	}
	if byID[rootID].Content != "" {
		t.Errorf("node without content row read as %q, want empty", byID[rootID].Content)
	}
	if byID[chapterID].Content != "chapter text" {
		t.Errorf("joined content = %q, want chapter text", byID[chapterID].Content)
	}
}
