package writing

import (
	"testing"

	models "inkwell/internal/domain/models/writing"
)

func strPtr(s string) *string { return &s }

func TestBuildTree_ContentFlagsAndPreviews(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantContent bool
		wantPreview string
	}{
		{
			name:        "long content trims then truncates",
			content:     "  hello world this is long  ",
			wantContent: true,
			wantPreview: "hello worl",
		},
		{
			name:        "whitespace-only content counts as empty",
			content:     "   \n\t ",
			wantContent: false,
			wantPreview: "",
		},
		{
			name:        "short content previews in full",
			content:     "hi",
			wantContent: true,
			wantPreview: "hi",
		},
		{
			name:        "no content at all",
			content:     "",
			wantContent: false,
			wantPreview: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []models.NodeRow{
				{ID: "n1", WorkID: "w1", Kind: models.KindChapterContent, Title: "Chapter", Content: tt.content},
			}

			tree := BuildTree(rows)
			if len(tree) != 1 {
				t.Fatalf("expected 1 root, got %d", len(tree))
			}
			if tree[0].HasContent != tt.wantContent {
				t.Errorf("HasContent = %v, want %v", tree[0].HasContent, tt.wantContent)
			}
			if tree[0].Preview != tt.wantPreview {
				t.Errorf("Preview = %q, want %q", tree[0].Preview, tt.wantPreview)
			}
		})
	}
}

func TestBuildTree_NestingAndSiblingOrder(t *testing.T) {
	// Rows deliberately out of order: sibling order comes from
	// (sort_order, id), not input order.
	rows := []models.NodeRow{
		{ID: "c2", WorkID: "w1", ParentID: strPtr("root"), Kind: models.KindChapter, Title: "Chapter 2", SortOrder: 2},
		{ID: "root", WorkID: "w1", Kind: models.KindWorkContent, Title: "Manuscript", SortOrder: 1},
		{ID: "c1b", WorkID: "w1", ParentID: strPtr("root"), Kind: models.KindChapter, Title: "Chapter 1b", SortOrder: 1},
		{ID: "c1a", WorkID: "w1", ParentID: strPtr("root"), Kind: models.KindChapter, Title: "Chapter 1a", SortOrder: 1},
		{ID: "settings", WorkID: "w1", Kind: models.KindWorkSettings, Title: "Work Settings", SortOrder: 0},
	}

	tree := BuildTree(rows)
	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}
	if tree[0].ID != "settings" || tree[1].ID != "root" {
		t.Errorf("root order = [%s, %s], want [settings, root]", tree[0].ID, tree[1].ID)
	}

	children := tree[1].Children
	if len(children) != 3 {
		t.Fatalf("expected 3 children under root, got %d", len(children))
	}
	// Equal sort_order breaks ties by ID: c1a before c1b.
	wantOrder := []string{"c1a", "c1b", "c2"}
	for i, want := range wantOrder {
		if children[i].ID != want {
			t.Errorf("children[%d].ID = %s, want %s", i, children[i].ID, want)
		}
	}
}

func TestBuildTree_DropsOrphanRows(t *testing.T) {
	rows := []models.NodeRow{
		{ID: "root", WorkID: "w1", Kind: models.KindWorkContent, Title: "Manuscript"},
		{ID: "orphan", WorkID: "w1", ParentID: strPtr("missing"), Kind: models.KindChapter, Title: "Lost"},
	}

	tree := BuildTree(rows)
	if len(tree) != 1 {
		t.Fatalf("expected 1 root, got %d", len(tree))
	}
	if tree[0].FindByID("orphan") != nil {
		t.Error("orphan row should not appear in the tree")
	}
}

func TestBuildTree_EmptyInput(t *testing.T) {
	tree := BuildTree(nil)
	if tree == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tree) != 0 {
		t.Errorf("expected no roots, got %d", len(tree))
	}
}
