// Package mutate holds the structural edits of a node collection.
//
// Every edit is permissive: an unknown id or an edit that makes no sense for
// the current shape (indenting a first child, unindenting a root) leaves the
// tree untouched and reports Changed=false instead of failing. Shells are
// expected to disable such actions using the Can* queries.
package mutate

import (
	"strings"

	"asciitree-cli/internal/model"
	"asciitree-cli/internal/render"
	"asciitree-cli/internal/store"
)

type Result struct {
	Node    *model.Node
	Changed bool
}

// Add appends a node named name under parentID (nil for a new root).
// The parent is not checked for existence. Names are trimmed; an empty name
// is a no-op.
func Add(t *store.Tree, parentID *string, name string) Result {
	name = strings.TrimSpace(name)
	if t == nil || name == "" {
		return Result{}
	}
	n := model.Node{ID: t.NextID(), Name: name}
	if parentID != nil {
		n.ParentID = model.StrPtr(*parentID)
	}
	t.Nodes = append(t.Nodes, n)
	t.Invalidate()
	return Result{Node: &t.Nodes[len(t.Nodes)-1], Changed: true}
}

// Delete removes nodeID and every transitive descendant, keeping the
// relative order of the remaining nodes.
func Delete(t *store.Tree, nodeID string) Result {
	ids := t.SubtreeIDs(strings.TrimSpace(nodeID))
	if len(ids) == 0 {
		return Result{}
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := t.Nodes[:0:0]
	for _, n := range t.Nodes {
		if !drop[n.ID] {
			kept = append(kept, n)
		}
	}
	t.Replace(kept)
	return Result{Changed: true}
}

// Rename sets the node's name. Names are trimmed; an empty name is a no-op.
func Rename(t *store.Tree, nodeID, name string) Result {
	name = strings.TrimSpace(name)
	if t == nil || name == "" {
		return Result{}
	}
	n, ok := t.FindNode(strings.TrimSpace(nodeID))
	if !ok {
		return Result{}
	}
	if n.Name == name {
		return Result{Node: n, Changed: false}
	}
	n.Name = name
	return Result{Node: n, Changed: true}
}

// Clear removes every node.
func Clear(t *store.Tree) Result {
	if t == nil || len(t.Nodes) == 0 {
		return Result{}
	}
	t.Replace(nil)
	return Result{Changed: true}
}

// Import replaces the whole collection with the nodes parsed from text.
func Import(t *store.Tree, text string) Result {
	if t == nil {
		return Result{}
	}
	nodes := render.Parse(text)
	if len(nodes) == 0 && len(t.Nodes) == 0 {
		return Result{}
	}
	t.Replace(nodes)
	return Result{Changed: true}
}
