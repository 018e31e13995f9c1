package store

import (
	"asciitree-cli/internal/model"
)

// Tree is the canonical node collection of one editing session.
//
// Nodes is an ordered sequence: sibling order is the order in which nodes with
// the same parent appear in it. There is no separate rank field.
type Tree struct {
	Nodes []model.Node `json:"nodes"`

	// Derived indexes, rebuilt lazily after Invalidate. Not persisted.
	idxBuilt bool
	idxByID  map[string]int
}

// New returns a tree over nodes. The slice is used as is.
func New(nodes []model.Node) *Tree {
	if nodes == nil {
		nodes = []model.Node{}
	}
	return &Tree{Nodes: nodes}
}

// Invalidate drops the derived indexes. Call after mutating Nodes directly.
func (t *Tree) Invalidate() {
	if t == nil {
		return
	}
	t.idxBuilt = false
	t.idxByID = nil
}

// Replace swaps in a new node sequence wholesale (import, undo, redo).
func (t *Tree) Replace(nodes []model.Node) {
	if nodes == nil {
		nodes = []model.Node{}
	}
	t.Nodes = nodes
	t.Invalidate()
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Nodes)
}

func (t *Tree) ensureIndexes() {
	if t == nil || t.idxBuilt {
		return
	}
	t.idxByID = make(map[string]int, len(t.Nodes))
	for i, n := range t.Nodes {
		if _, dup := t.idxByID[n.ID]; dup {
			continue
		}
		t.idxByID[n.ID] = i
	}
	t.idxBuilt = true
}

// IndexOf returns the sequence position of id, or -1.
func (t *Tree) IndexOf(id string) int {
	if t == nil || id == "" {
		return -1
	}
	t.ensureIndexes()
	if i, ok := t.idxByID[id]; ok {
		return i
	}
	return -1
}

func (t *Tree) Has(id string) bool {
	return t.IndexOf(id) >= 0
}

func (t *Tree) FindNode(id string) (*model.Node, bool) {
	i := t.IndexOf(id)
	if i < 0 {
		return nil, false
	}
	return &t.Nodes[i], true
}

// ChildrenOf returns the direct children of parentID in sequence order.
// An empty parentID returns the roots.
func (t *Tree) ChildrenOf(parentID string) []model.Node {
	if t == nil {
		return nil
	}
	var out []model.Node
	for _, n := range t.Nodes {
		if n.HasParent(parentID) {
			out = append(out, n)
		}
	}
	return out
}

func (t *Tree) Roots() []model.Node {
	return t.ChildrenOf("")
}

// SiblingsOf returns every node sharing id's parent, id included, in sequence
// order, plus id's position within that list. The position is -1 when id does
// not exist.
func (t *Tree) SiblingsOf(id string) ([]model.Node, int) {
	n, ok := t.FindNode(id)
	if !ok {
		return nil, -1
	}
	self := *n
	sibs := make([]model.Node, 0, 4)
	pos := -1
	for _, x := range t.Nodes {
		if !model.SameParent(x, self) {
			continue
		}
		if x.ID == id {
			pos = len(sibs)
		}
		sibs = append(sibs, x)
	}
	return sibs, pos
}

// SubtreeIDs returns id followed by all of its transitive descendants.
//
// The closure follows parent links backwards with a worklist, so the result
// does not depend on where descendants sit in the sequence. The result is
// empty when id does not exist.
func (t *Tree) SubtreeIDs(id string) []string {
	if !t.Has(id) {
		return nil
	}
	children := map[string][]string{}
	for _, n := range t.Nodes {
		if n.ParentID == nil {
			continue
		}
		children[*n.ParentID] = append(children[*n.ParentID], n.ID)
	}

	out := []string{}
	seen := map[string]bool{}
	work := []string{id}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		out = append(out, cur)
		kids := children[cur]
		for i := len(kids) - 1; i >= 0; i-- {
			work = append(work, kids[i])
		}
	}
	return out
}

// Ancestors returns the parent chain of id, nearest first. Dangling parent
// references end the chain.
func (t *Tree) Ancestors(id string) []string {
	n, ok := t.FindNode(id)
	if !ok {
		return nil
	}
	var out []string
	seen := map[string]bool{id: true}
	for n.ParentID != nil {
		pid := *n.ParentID
		if seen[pid] {
			break
		}
		seen[pid] = true
		p, ok := t.FindNode(pid)
		if !ok {
			break
		}
		out = append(out, pid)
		n = p
	}
	return out
}

// IsAncestor reports whether ancestorID appears on id's parent chain.
func (t *Tree) IsAncestor(ancestorID, id string) bool {
	for _, a := range t.Ancestors(id) {
		if a == ancestorID {
			return true
		}
	}
	return false
}

// Snapshot returns a deep copy of the current sequence.
func (t *Tree) Snapshot() model.Snapshot {
	if t == nil {
		return model.Snapshot{}
	}
	return model.Clone(t.Nodes)
}
