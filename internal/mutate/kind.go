package mutate

import (
	"strings"

	"asciitree-cli/internal/model"
	"asciitree-cli/internal/store"
)

// SetKind sets n.Kind from user input ("file", "folder", "" to unset).
// An unknown id is a no-op; an unrecognised kind returns model.ErrInvalidKind.
func SetKind(t *store.Tree, nodeID, kind string) (Result, error) {
	nodeID = strings.TrimSpace(nodeID)
	next, err := model.ParseKind(kind)
	if err != nil {
		return Result{}, err
	}
	if t == nil || nodeID == "" {
		return Result{}, nil
	}

	n, ok := t.FindNode(nodeID)
	if !ok {
		return Result{}, nil
	}
	if n.Kind == next {
		return Result{Node: n, Changed: false}, nil
	}
	n.Kind = next
	return Result{Node: n, Changed: true}, nil
}
