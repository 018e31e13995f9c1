package render

import (
	"strings"

	"asciitree-cli/internal/model"
	"asciitree-cli/internal/store"
)

type parsedLine struct {
	depth int
	name  string
}

type stackEntry struct {
	id    string
	depth int
}

// Parse reconstructs a node collection from ASCII tree text, assigning fresh
// ids. Kinds are guessed from the name: anything containing a "." is a file.
//
// Depth is the number of leading "    " or "│   " units, so text indented
// with anything else (tabs, two spaces) parses at the wrong depth. Lines
// without a "├── " or "└── " connector are skipped.
func Parse(text string) []model.Node {
	return ParseWith(text, store.NewID)
}

// ParseWith is Parse with a caller-supplied id generator.
func ParseWith(text string, newID func() string) []model.Node {
	lines := scanLines(text)
	out := make([]model.Node, 0, len(lines))

	stack := []stackEntry{{depth: -1}}
	for i, pl := range lines {
		for len(stack) > 1 && stack[len(stack)-1].depth >= pl.depth {
			stack = stack[:len(stack)-1]
		}

		n := model.Node{ID: newID(), Name: pl.name, Kind: guessKind(pl.name)}
		if top := stack[len(stack)-1]; top.depth >= 0 {
			n.ParentID = model.StrPtr(top.id)
		}
		out = append(out, n)

		if i+1 < len(lines) && lines[i+1].depth > pl.depth {
			stack = append(stack, stackEntry{id: n.ID, depth: pl.depth})
		}
	}
	return out
}

func scanLines(text string) []parsedLine {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")
	out := make([]parsedLine, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, ok := lineName(line)
		if !ok {
			continue
		}
		out = append(out, parsedLine{depth: lineDepth(line), name: name})
	}
	return out
}

// lineDepth counts indentation units from the start of line.
func lineDepth(line string) int {
	depth := 0
	for {
		switch {
		case strings.HasPrefix(line, UnitBlank):
			line = line[len(UnitBlank):]
		case strings.HasPrefix(line, UnitBar):
			line = line[len(UnitBar):]
		default:
			return depth
		}
		depth++
	}
}

// lineName returns the text after the first connector in line.
func lineName(line string) (string, bool) {
	at, conn := -1, ""
	for _, c := range []string{ConnTee, ConnElbow} {
		if i := strings.Index(line, c); i >= 0 && (at < 0 || i < at) {
			at, conn = i, c
		}
	}
	if at < 0 {
		return "", false
	}
	name := strings.TrimSpace(line[at+len(conn):])
	if name == "" {
		return "", false
	}
	return name, true
}

func guessKind(name string) model.Kind {
	if strings.Contains(name, ".") {
		return model.KindFile
	}
	return model.KindFolder
}
