// Package render converts between the flat node collection and the canonical
// ASCII tree text:
//
//	└── Root
//	    ├── A
//	    │   └── C
//	    └── B
//
// Each level is indented by a 4-character unit, either "    " or "│   ", and
// every line carries a "├── " or "└── " connector. Roots have no prefix.
package render

import (
	"strings"

	"asciitree-cli/internal/model"
)

const (
	UnitBlank = "    "
	UnitBar   = "│   "
	ConnTee   = "├── "
	ConnElbow = "└── "

	// Placeholder is what shells display for an empty tree.
	Placeholder = "Tree is empty"
)

// Line is one rendered row of the tree.
type Line struct {
	ID        string
	Depth     int
	Prefix    string
	Connector string
	Name      string
	Last      bool
}

func (l Line) String() string {
	return l.Prefix + l.Connector + l.Name
}

// Render returns the canonical ASCII text for nodes, one "\n"-terminated line
// per reachable node. Nodes whose parent chain does not reach a root are not
// rendered. An empty collection renders to "".
func Render(nodes []model.Node) string {
	lines := RenderLines(nodes)
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.Prefix)
		b.WriteString(l.Connector)
		b.WriteString(l.Name)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderLines walks the forest depth-first in sequence order and returns the
// rows in display order.
func RenderLines(nodes []model.Node) []Line {
	if len(nodes) == 0 {
		return nil
	}

	var roots []int
	children := map[string][]int{}
	for i, n := range nodes {
		if n.ParentID == nil {
			roots = append(roots, i)
			continue
		}
		children[*n.ParentID] = append(children[*n.ParentID], i)
	}

	type frame struct {
		idx    int
		depth  int
		prefix string
		last   bool
	}

	stack := make([]frame, 0, len(nodes))
	pushGroup := func(group []int, depth int, prefix string) {
		for i := len(group) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				idx:    group[i],
				depth:  depth,
				prefix: prefix,
				last:   i == len(group)-1,
			})
		}
	}
	pushGroup(roots, 0, "")

	out := make([]Line, 0, len(nodes))
	visited := make([]bool, len(nodes))
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[f.idx] {
			continue
		}
		visited[f.idx] = true

		n := nodes[f.idx]
		conn := ConnTee
		next := f.prefix + UnitBar
		if f.last {
			conn = ConnElbow
			next = f.prefix + UnitBlank
		}
		out = append(out, Line{
			ID:        n.ID,
			Depth:     f.depth,
			Prefix:    f.prefix,
			Connector: conn,
			Name:      n.Name,
			Last:      f.last,
		})
		pushGroup(children[n.ID], f.depth+1, next)
	}
	return out
}
