package writing

import (
	"time"
)

// NodeKind tags a structure node with its role in the work tree.
// The set is closed; anything else is rejected at the service boundary.
type NodeKind string

const (
	// Work-level settings categories
	KindWorkSettings      NodeKind = "work_settings"
	KindWorldSettings     NodeKind = "world_settings"
	KindCharacterSettings NodeKind = "character_settings"
	KindWritingAdvice     NodeKind = "writing_advice"
	KindOverallOutline    NodeKind = "overall_outline"

	// Work introduction
	KindWorkIntro NodeKind = "work_intro"

	// Free-form chat
	KindChat NodeKind = "chat"

	// Work body structure
	KindWorkContent    NodeKind = "work_content"
	KindVolume         NodeKind = "volume"
	KindVolumeOutline  NodeKind = "volume_outline"
	KindVolumeSummary  NodeKind = "volume_summary"
	KindVolumeContent  NodeKind = "volume_content"
	KindChapter        NodeKind = "chapter"
	KindChapterOutline NodeKind = "chapter_outline"
	KindChapterContent NodeKind = "chapter_content"
	KindChapterContext NodeKind = "chapter_context"
)

// nodeKinds is the closed set of valid kinds
var nodeKinds = map[NodeKind]struct{}{
	KindWorkSettings:      {},
	KindWorldSettings:     {},
	KindCharacterSettings: {},
	KindWritingAdvice:     {},
	KindOverallOutline:    {},
	KindWorkIntro:         {},
	KindChat:              {},
	KindWorkContent:       {},
	KindVolume:            {},
	KindVolumeOutline:     {},
	KindVolumeSummary:     {},
	KindVolumeContent:     {},
	KindChapter:           {},
	KindChapterOutline:    {},
	KindChapterContent:    {},
	KindChapterContext:    {},
}

// Valid reports whether the kind belongs to the closed set.
func (k NodeKind) Valid() bool {
	_, ok := nodeKinds[k]
	return ok
}

// Node is a titled element of a work's structure tree. ParentID nil
// means root level. Siblings are ordered by SortOrder, ties broken by ID.
type Node struct {
	ID        string    `json:"id" db:"id"`
	WorkID    string    `json:"work_id" db:"work_id"`
	ParentID  *string   `json:"parent_id" db:"parent_id"` // NULL = root level
	Kind      NodeKind  `json:"kind" db:"kind"`
	Title     string    `json:"title" db:"title"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
