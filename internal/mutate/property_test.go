package mutate

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"asciitree-cli/internal/model"
	"asciitree-cli/internal/store"
)

func TestStructuralEdits_KeepTreeValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := store.New(nil)
		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			pick := func() string {
				if tr.Len() == 0 {
					return "missing"
				}
				return tr.Nodes[rapid.IntRange(0, tr.Len()-1).Draw(t, "target")].ID
			}
			switch rapid.IntRange(0, 6).Draw(t, "op") {
			case 0, 1:
				var parent *string
				if tr.Len() > 0 && rapid.Bool().Draw(t, "child") {
					parent = model.StrPtr(pick())
				}
				Add(tr, parent, fmt.Sprintf("n%d", i))
			case 2:
				Indent(tr, pick())
			case 3:
				Unindent(tr, pick())
			case 4:
				MoveUp(tr, pick())
			case 5:
				MoveDown(tr, pick())
			case 6:
				Delete(tr, pick())
			}
			if err := store.Validate(tr.Nodes); err != nil {
				t.Fatalf("step %d left an invalid tree: %v", i, err)
			}
		}
	})
}

func TestDelete_RemovesExactlySubtree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := store.New(nil)
		n := rapid.IntRange(1, 25).Draw(t, "n")
		for i := 0; i < n; i++ {
			var parent *string
			if i > 0 && rapid.Bool().Draw(t, "child") {
				parent = model.StrPtr(tr.Nodes[rapid.IntRange(0, i-1).Draw(t, "parent")].ID)
			}
			Add(tr, parent, fmt.Sprintf("n%d", i))
		}
		target := tr.Nodes[rapid.IntRange(0, n-1).Draw(t, "target")].ID
		subtree := tr.SubtreeIDs(target)

		Delete(tr, target)
		if tr.Len() != n-len(subtree) {
			t.Fatalf("expected %d nodes left; got %d", n-len(subtree), tr.Len())
		}
		for _, id := range subtree {
			if tr.Has(id) {
				t.Fatalf("node %s survived deleting its ancestor", id)
			}
		}
	})
}
