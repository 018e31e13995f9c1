// Package selection tracks the single selected node and derives everything
// else (highlighting, which moves are legal) from the current tree on demand.
package selection

import (
	"asciitree-cli/internal/mutate"
	"asciitree-cli/internal/store"
)

type Role int

const (
	RoleNone Role = iota
	RoleSelected
	RoleDescendant
)

func (r Role) String() string {
	switch r {
	case RoleSelected:
		return "selected"
	case RoleDescendant:
		return "descendant"
	default:
		return "none"
	}
}

// Selection holds at most one node id.
type Selection struct {
	id *string
}

func (s *Selection) Select(id *string) {
	if id == nil || *id == "" {
		s.id = nil
		return
	}
	v := *id
	s.id = &v
}

func (s *Selection) Clear() { s.id = nil }

// ID returns a copy of the selected id, or nil.
func (s *Selection) ID() *string {
	if s.id == nil {
		return nil
	}
	v := *s.id
	return &v
}

func (s *Selection) IsSelected(id string) bool {
	return s.id != nil && *s.id == id
}

// Reconcile clears the selection when the selected node no longer exists.
// It reports whether the selection was cleared.
func (s *Selection) Reconcile(t *store.Tree) bool {
	if s.id == nil || t.Has(*s.id) {
		return false
	}
	s.id = nil
	return true
}

func (s *Selection) CanIndent(t *store.Tree) bool {
	return s.id != nil && mutate.CanIndent(t, *s.id)
}

func (s *Selection) CanUnindent(t *store.Tree) bool {
	return s.id != nil && mutate.CanUnindent(t, *s.id)
}

func (s *Selection) CanMoveUp(t *store.Tree) bool {
	return s.id != nil && mutate.CanMoveUp(t, *s.id)
}

func (s *Selection) CanMoveDown(t *store.Tree) bool {
	return s.id != nil && mutate.CanMoveDown(t, *s.id)
}

// Ancestors returns id's parent chain, nearest first.
func Ancestors(t *store.Tree, id string) []string {
	return t.Ancestors(id)
}

// IsDescendant reports whether nodeID sits strictly below ancestorID.
func IsDescendant(t *store.Tree, nodeID, ancestorID string) bool {
	if nodeID == "" || ancestorID == "" || nodeID == ancestorID {
		return false
	}
	return t.IsAncestor(ancestorID, nodeID)
}

// Highlight maps every node id to its display role for the given selection.
// Nodes with RoleNone are omitted.
func Highlight(t *store.Tree, selectedID *string) map[string]Role {
	out := map[string]Role{}
	if selectedID == nil || !t.Has(*selectedID) {
		return out
	}
	sel := *selectedID
	for _, id := range t.SubtreeIDs(sel) {
		out[id] = RoleDescendant
	}
	out[sel] = RoleSelected
	return out
}
