package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"asciitree-cli/internal/model"
)

const statusTTL = 3 * time.Second

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).Warn("clipboard write failed")
			cmd := m.setStatus("copy failed: "+msg.err.Error(), true)
			return m, cmd
		}
		cmd := m.setStatus("copied tree to clipboard", false)
		return m, cmd

	case statusClearMsg:
		// Only the latest status clears itself.
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeRename:
			return m.updateInput(msg)
		case modeImport:
			return m.updateImport(msg)
		case modeConfirmClear:
			return m.updateConfirmClear(msg)
		case modeInstructions:
			return m.updateInstructions(msg)
		default:
			return m.updateTree(msg)
		}
	}

	var cmd tea.Cmd
	m.output, cmd = m.output.Update(msg)
	return m, cmd
}

func (m *appModel) setStatus(s string, isErr bool) tea.Cmd {
	m.status = s
	m.statusIsErr = isErr
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

func (m appModel) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.selectedID()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if id == "" {
			m.selectRow(len(m.rows) - 1)
		} else {
			m.selectRow(m.cursor - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if id == "" {
			m.selectRow(0)
		} else {
			m.selectRow(m.cursor + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Deselect):
		m.sess.Select(nil)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		m.sess.MoveUp(id)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.MoveDown):
		m.sess.MoveDown(id)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Indent):
		m.sess.Indent(id)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Unindent):
		m.sess.Unindent(id)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.sess.Delete(id)
		m.refresh()
		cmd := m.setStatus("deleted", false)
		return m, cmd

	case key.Matches(msg, m.keys.SetFile):
		return m.setKind(id, model.KindFile)

	case key.Matches(msg, m.keys.SetFolder):
		return m.setKind(id, model.KindFolder)

	case key.Matches(msg, m.keys.Undo):
		m.sess.Undo()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Redo):
		m.sess.Redo()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Placeholder = "name"
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Rename):
		m.mode = modeRename
		m.input.SetValue(m.nameOf(id))
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Import):
		m.mode = modeImport
		m.textarea.SetValue("")
		cmd := m.textarea.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.mode = modeConfirmClear
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, copyToClipboardCmd(m.sess.Render())

	case key.Matches(msg, m.keys.Help):
		m.mode = modeInstructions
		return m, nil
	}

	// Anything else scrolls the output pane.
	var cmd tea.Cmd
	m.output, cmd = m.output.Update(msg)
	return m, cmd
}

func (m appModel) setKind(id string, kind model.Kind) (tea.Model, tea.Cmd) {
	if _, err := m.sess.SetKind(id, string(kind)); err != nil {
		cmd := m.setStatus(err.Error(), true)
		return m, cmd
	}
	m.refresh()
	cmd := m.setStatus("marked as "+string(kind), false)
	return m, cmd
}

func (m appModel) nameOf(id string) string {
	for _, r := range m.rows {
		if r.ID == id {
			return r.Name
		}
	}
	return ""
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeTree
		m.input.Blur()
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.input.Value())
		md := m.mode
		m.mode = modeTree
		m.input.Blur()
		if name == "" {
			cmd := m.setStatus("name cannot be empty", true)
			return m, cmd
		}
		if md == modeAdd {
			m.sess.Add(name)
		} else {
			m.sess.Rename(m.selectedID(), name)
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeTree
		m.textarea.Blur()
		return m, nil

	case "ctrl+s":
		text := m.textarea.Value()
		m.mode = modeTree
		m.textarea.Blur()
		if strings.TrimSpace(text) == "" {
			cmd := m.setStatus("nothing to import", true)
			return m, cmd
		}
		st := m.sess.Import(text)
		m.cursor = 0
		m.refresh()
		if st.Empty() {
			cmd := m.setStatus("no tree lines found", true)
			return m, cmd
		}
		cmd := m.setStatus("imported tree", false)
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.sess.Clear()
		m.mode = modeTree
		m.cursor = 0
		m.refresh()
		cmd := m.setStatus("cleared", false)
		return m, cmd
	default:
		m.mode = modeTree
		return m, nil
	}
}

func (m appModel) updateInstructions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m, tea.Quit
	case msg.String() == "esc", msg.String() == "q", key.Matches(msg, m.keys.Help):
		m.mode = modeTree
	}
	return m, nil
}
