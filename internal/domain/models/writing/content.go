package writing

import (
	"time"
)

// Content is the current text body of a node, at most one row per node.
// Created lazily on first save; absence reads as empty content.
type Content struct {
	ID        string    `json:"id" db:"id"`
	NodeID    string    `json:"node_id" db:"node_id"`
	Content   string    `json:"content" db:"content"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
