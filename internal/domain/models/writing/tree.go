package writing

// NodeRow is the flat node+content row the tree is projected from:
// one row per node with its current content joined on, read atomically.
type NodeRow struct {
	ID        string
	WorkID    string
	ParentID  *string
	Kind      NodeKind
	Title     string
	SortOrder int
	Content   string
}

// TreeNode is the nested, display-ready projection of a node. It is a
// separate type from the persisted Node to keep what is stored and what
// is displayed decoupled; rebuilt on every structural read.
type TreeNode struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Kind       NodeKind    `json:"kind"`
	HasContent bool        `json:"has_content"`
	Preview    string      `json:"preview"`
	Children   []*TreeNode `json:"children"`
}

// FindByID walks the subtree rooted at n looking for the given node ID.
func (n *TreeNode) FindByID(id string) *TreeNode {
	if n.ID == id {
		return n
	}
	for _, child := range n.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}
