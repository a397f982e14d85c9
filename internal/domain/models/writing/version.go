package writing

import (
	"time"
)

// Version is an immutable historical snapshot of a node's content,
// written by the save path before the current text is overwritten.
// Never mutated; removed only by retention pruning or cascade delete.
type Version struct {
	ID        string    `json:"id" db:"id"`
	NodeID    string    `json:"node_id" db:"node_id"`
	Label     string    `json:"label" db:"label"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// VersionInfo is the listing projection of a version: no full text,
// just a read-time preview of its leading characters.
type VersionInfo struct {
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	Preview   string    `json:"preview"`
}
