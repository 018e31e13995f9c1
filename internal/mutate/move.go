package mutate

import (
	"strings"

	"asciitree-cli/internal/model"
	"asciitree-cli/internal/store"
)

// Indent re-parents nodeID under its preceding sibling, i.e. the closest
// earlier node in the sequence that shares its parent. The node keeps its
// sequence position, so it becomes the last child of the new parent when it
// follows that parent's existing children.
func Indent(t *store.Tree, nodeID string) Result {
	nodeID = strings.TrimSpace(nodeID)
	sibs, pos := t.SiblingsOf(nodeID)
	if pos <= 0 {
		return Result{}
	}
	newParent := sibs[pos-1].ID
	if newParent == nodeID || t.IsAncestor(nodeID, newParent) {
		return Result{}
	}
	n, _ := t.FindNode(nodeID)
	n.ParentID = model.StrPtr(newParent)
	return Result{Node: n, Changed: true}
}

// Unindent re-parents nodeID to its grandparent. Roots are left alone. A node
// whose parent reference does not resolve becomes a root.
func Unindent(t *store.Tree, nodeID string) Result {
	n, ok := t.FindNode(strings.TrimSpace(nodeID))
	if !ok || n.ParentID == nil {
		return Result{}
	}
	p, ok := t.FindNode(*n.ParentID)
	if !ok || p.ParentID == nil {
		n.ParentID = nil
		return Result{Node: n, Changed: true}
	}
	n.ParentID = model.StrPtr(*p.ParentID)
	return Result{Node: n, Changed: true}
}

// MoveUp swaps nodeID with its preceding sibling in the sequence. Parentage
// does not change and nodes between the two keep their positions.
func MoveUp(t *store.Tree, nodeID string) Result {
	nodeID = strings.TrimSpace(nodeID)
	sibs, pos := t.SiblingsOf(nodeID)
	if pos <= 0 {
		return Result{}
	}
	return swap(t, nodeID, sibs[pos-1].ID)
}

// MoveDown swaps nodeID with its following sibling in the sequence.
func MoveDown(t *store.Tree, nodeID string) Result {
	nodeID = strings.TrimSpace(nodeID)
	sibs, pos := t.SiblingsOf(nodeID)
	if pos < 0 || pos >= len(sibs)-1 {
		return Result{}
	}
	return swap(t, nodeID, sibs[pos+1].ID)
}

func swap(t *store.Tree, movedID, otherID string) Result {
	i, j := t.IndexOf(movedID), t.IndexOf(otherID)
	if i < 0 || j < 0 || i == j {
		return Result{}
	}
	t.Nodes[i], t.Nodes[j] = t.Nodes[j], t.Nodes[i]
	t.Invalidate()
	return Result{Node: &t.Nodes[j], Changed: true}
}

func CanIndent(t *store.Tree, nodeID string) bool {
	_, pos := t.SiblingsOf(strings.TrimSpace(nodeID))
	return pos > 0
}

func CanUnindent(t *store.Tree, nodeID string) bool {
	n, ok := t.FindNode(strings.TrimSpace(nodeID))
	return ok && n.ParentID != nil
}

func CanMoveUp(t *store.Tree, nodeID string) bool {
	_, pos := t.SiblingsOf(strings.TrimSpace(nodeID))
	return pos > 0
}

func CanMoveDown(t *store.Tree, nodeID string) bool {
	sibs, pos := t.SiblingsOf(strings.TrimSpace(nodeID))
	return pos >= 0 && pos < len(sibs)-1
}
