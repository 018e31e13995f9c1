package store

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"asciitree-cli/internal/model"
)

var (
	ErrDuplicateID = errors.New("duplicate node id")
	ErrEmptyID     = errors.New("empty node id")
)

type DanglingParentError struct {
	ID       string
	ParentID string
}

func (e DanglingParentError) Error() string {
	return fmt.Sprintf("node %s references missing parent %s", e.ID, e.ParentID)
}

type CycleError struct {
	IDs []string
}

func (e CycleError) Error() string {
	return fmt.Sprintf("parent cycle through %v", e.IDs)
}

// Validate checks the structural invariants of a collection: non-empty unique
// ids, every parent reference resolves, and the parent relation is acyclic.
func Validate(nodes []model.Node) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return ErrEmptyID
		}
		if seen[n.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
		}
		seen[n.ID] = true
	}
	for _, n := range nodes {
		if n.ParentID != nil && !seen[*n.ParentID] {
			return DanglingParentError{ID: n.ID, ParentID: *n.ParentID}
		}
	}
	return checkAcyclic(nodes)
}

func checkAcyclic(nodes []model.Node) error {
	g := simple.NewDirectedGraph()
	idToNode := make(map[string]int64, len(nodes))
	nodeToID := make(map[int64]string, len(nodes))
	for _, n := range nodes {
		gn := g.NewNode()
		g.AddNode(gn)
		idToNode[n.ID] = gn.ID()
		nodeToID[gn.ID()] = n.ID
	}
	for _, n := range nodes {
		if n.ParentID == nil {
			continue
		}
		// simple graphs reject self edges.
		if *n.ParentID == n.ID {
			return CycleError{IDs: []string{n.ID}}
		}
		u, ok := idToNode[*n.ParentID]
		if !ok {
			continue
		}
		// parent -> child
		g.SetEdge(g.NewEdge(g.Node(u), g.Node(idToNode[n.ID])))
	}

	if _, err := topo.Sort(g); err == nil {
		return nil
	}
	for _, scc := range topo.TarjanSCC(g) {
		if len(scc) < 2 {
			continue
		}
		ids := make([]string, 0, len(scc))
		for _, gn := range scc {
			ids = append(ids, nodeToID[gn.ID()])
		}
		return CycleError{IDs: ids}
	}
	return CycleError{}
}
