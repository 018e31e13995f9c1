package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"asciitree-cli/internal/model"
	"asciitree-cli/internal/render"
	"asciitree-cli/internal/selection"
)

func (m appModel) View() string {
	if m.mode == modeInstructions {
		return m.viewInstructions()
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	paneW := width/2 - 2
	if paneW < 20 {
		paneW = 20
	}

	left := stylePane(m.mode != modeImport).Width(paneW).Render(
		styleTitle().Render(m.mode.title()) + "\n" + m.viewTreeRows(paneW-2),
	)
	right := stylePane(false).Width(paneW).Render(
		styleTitle().Render("ASCII") + "\n" + m.output.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var parts []string
	parts = append(parts, body)

	switch m.mode {
	case modeAdd, modeRename:
		parts = append(parts, renderInputLine(width-2, m.mode.title()+": "+m.input.View()))
	case modeImport:
		parts = append(parts,
			styleTitle().Render("Paste tree (ctrl+s import, esc cancel)"),
			m.textarea.View(),
		)
	case modeConfirmClear:
		parts = append(parts, styleStatus(true).Render("Clear the whole tree? (y/N)"))
	}

	if m.status != "" {
		parts = append(parts, styleStatus(m.statusIsErr).Render(m.status))
	}
	parts = append(parts, styleMuted().Render(strings.Repeat(glyphHRule(), width-2)))
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func (m appModel) viewTreeRows(w int) string {
	if len(m.rows) == 0 {
		return styleMuted().Render(render.Placeholder)
	}

	kinds := make(map[string]model.Kind, len(m.rows))
	for _, n := range m.sess.Nodes() {
		kinds[n.ID] = n.Kind
	}
	roles := m.sess.Highlight()

	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		marker := "  "
		if roles[r.ID] == selection.RoleSelected && i == m.cursor {
			marker = glyphCursor() + " "
		}
		badge := ""
		switch kinds[r.ID] {
		case model.KindFolder:
			badge = glyphFolder() + " "
		case model.KindFile:
			badge = glyphFile() + " "
		}
		row := fitRow(marker+r.Prefix+r.Connector+badge+r.Name, w)
		switch roles[r.ID] {
		case selection.RoleSelected:
			row = styleSelectedRow().Render(row)
		case selection.RoleDescendant:
			row = styleDescendantRow().Render(row)
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewInstructions() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return renderMarkdown(instructionsMarkdown(), width-4) + "\n\n" +
		styleMuted().Render("esc: back")
}
