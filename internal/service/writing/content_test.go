package writing

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/domain"
)

func newTestContentService(t *testing.T) (*memContentRepo, *memVersionRepo, *contentService) {
	t.Helper()
	contentRepo := newMemContentRepo()
	versionRepo := newMemVersionRepo()
	svc := NewContentService(contentRepo, versionRepo, passthroughTx{}, testLogger(t)).(*contentService)
	return contentRepo, versionRepo, svc
}

func TestSaveContent_FirstSaveCreatesNoVersion(t *testing.T) {
	contentRepo, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	if err := svc.SaveContent(ctx, "n1", "v1"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	if got := contentRepo.texts["n1"]; got != "v1" {
		t.Errorf("content = %q, want %q", got, "v1")
	}
	if len(versionRepo.versions["n1"]) != 0 {
		t.Errorf("first save produced %d versions, want 0", len(versionRepo.versions["n1"]))
	}
}

func TestSaveContent_IdenticalSaveCreatesNoVersion(t *testing.T) {
	_, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	if err := svc.SaveContent(ctx, "n1", "v1"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := svc.SaveContent(ctx, "n1", "v1"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	if len(versionRepo.versions["n1"]) != 0 {
		t.Errorf("identical save produced %d versions, want 0", len(versionRepo.versions["n1"]))
	}
}

func TestSaveContent_DifferingSaveSnapshotsPriorText(t *testing.T) {
	contentRepo, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	if err := svc.SaveContent(ctx, "n1", "v1"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := svc.SaveContent(ctx, "n1", "v2"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	if got := contentRepo.texts["n1"]; got != "v2" {
		t.Errorf("content = %q, want %q", got, "v2")
	}

	versions := versionRepo.versions["n1"]
	if len(versions) != 1 {
		t.Fatalf("expected 1 version, got %d", len(versions))
	}
	// The snapshot holds the text that was overwritten, not the new one.
	if versions[0].Content != "v1" {
		t.Errorf("snapshot content = %q, want %q", versions[0].Content, "v1")
	}
}

func TestSaveContent_LabelsStayDistinct(t *testing.T) {
	_, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	// Rapid differing saves land in the same second; every snapshot
	// must still get its own label.
	for _, text := range []string{"a", "b", "c", "d"} {
		if err := svc.SaveContent(ctx, "n1", text); err != nil {
			t.Fatalf("SaveContent failed: %v", err)
		}
	}

	seen := make(map[string]bool)
	for _, v := range versionRepo.versions["n1"] {
		if seen[v.Label] {
			t.Errorf("label %q assigned twice", v.Label)
		}
		seen[v.Label] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 distinct labels, got %d", len(seen))
	}
}

func TestSaveContent_SnapshotFailureFailsWholeSave(t *testing.T) {
	contentRepo, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	if err := svc.SaveContent(ctx, "n1", "v1"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	versionRepo.insertErr = errStoreDown
	if err := svc.SaveContent(ctx, "n1", "v2"); err == nil {
		t.Fatal("expected save to fail when the snapshot fails")
	}

	if got := contentRepo.texts["n1"]; got != "v1" {
		t.Errorf("content = %q after failed save, want prior %q", got, "v1")
	}
}

func TestSaveContent_PrunesToRetentionLimit(t *testing.T) {
	_, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	// 12 differing saves snapshot 11 prior texts; only the 10 newest
	// survive pruning.
	texts := []string{"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11"}
	for _, text := range texts {
		if err := svc.SaveContent(ctx, "n1", text); err != nil {
			t.Fatalf("SaveContent failed: %v", err)
		}
	}

	versions := versionRepo.versions["n1"]
	if len(versions) != 10 {
		t.Fatalf("expected 10 retained versions, got %d", len(versions))
	}
	if versions[0].Content != "t1" {
		t.Errorf("oldest retained = %q, want %q (t0 pruned)", versions[0].Content, "t1")
	}
	if versions[9].Content != "t10" {
		t.Errorf("newest retained = %q, want %q", versions[9].Content, "t10")
	}
}

func TestGetVersion_MissingLabel(t *testing.T) {
	_, _, svc := newTestContentService(t)

	_, err := svc.GetVersion(context.Background(), "n1", "20240101T000000")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRestoreVersion_MissingLabelHasNoSideEffects(t *testing.T) {
	contentRepo, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	if err := svc.SaveContent(ctx, "n1", "v1"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	restored, err := svc.RestoreVersion(ctx, "n1", "20240101T000000")
	if err != nil {
		t.Fatalf("RestoreVersion failed: %v", err)
	}
	if restored {
		t.Error("expected restored=false for a missing label")
	}
	if got := contentRepo.texts["n1"]; got != "v1" {
		t.Errorf("content = %q, want untouched %q", got, "v1")
	}
	if len(versionRepo.versions["n1"]) != 0 {
		t.Errorf("missing-label restore produced %d versions, want 0", len(versionRepo.versions["n1"]))
	}
}

func TestRestoreVersion_VersionsThePreRestoreText(t *testing.T) {
	contentRepo, versionRepo, svc := newTestContentService(t)
	ctx := context.Background()

	if err := svc.SaveContent(ctx, "n1", "v1"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}
	if err := svc.SaveContent(ctx, "n1", "v2"); err != nil {
		t.Fatalf("SaveContent failed: %v", err)
	}

	// One snapshot so far: v1. Restore it.
	label := versionRepo.versions["n1"][0].Label
	restored, err := svc.RestoreVersion(ctx, "n1", label)
	if err != nil {
		t.Fatalf("RestoreVersion failed: %v", err)
	}
	if !restored {
		t.Fatal("expected restored=true")
	}

	if got := contentRepo.texts["n1"]; got != "v1" {
		t.Errorf("content after restore = %q, want %q", got, "v1")
	}

	// The restore ran through the save path, so v2 was snapshotted and
	// the restore is itself reversible.
	versions := versionRepo.versions["n1"]
	if len(versions) != 2 {
		t.Fatalf("expected 2 versions after restore, got %d", len(versions))
	}
	if versions[1].Content != "v2" {
		t.Errorf("newest snapshot = %q, want pre-restore %q", versions[1].Content, "v2")
	}
}
