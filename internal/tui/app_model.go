package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"asciitree-cli/internal/render"
	"asciitree-cli/internal/session"
)

type appModel struct {
	sess *session.Session
	log  *logrus.Entry

	width  int
	height int

	mode mode
	keys keyMap
	help help.Model

	// rows is the rendered tree in display order; cursor indexes into it.
	rows   []render.Line
	cursor int

	input    textinput.Model
	textarea textarea.Model
	output   viewport.Model

	status      string
	statusIsErr bool
	statusSeq   int
}

func newAppModel(sess *session.Session, log *logrus.Logger) appModel {
	m := appModel{
		sess: sess,
		log:  log.WithField("component", "tui"),
		mode: modeTree,
		keys: defaultKeyMap(),
		help: help.New(),
	}

	m.input = textinput.New()
	m.input.Prompt = "> "
	m.input.CharLimit = 256
	m.input.Width = 40

	m.textarea = textarea.New()
	m.textarea.Placeholder = "Paste an ASCII tree…"
	m.textarea.CharLimit = 0
	m.textarea.ShowLineNumbers = false
	m.textarea.SetWidth(72)
	m.textarea.SetHeight(12)

	m.output = viewport.New(40, 10)

	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// refresh re-derives everything shown from the session: rows, cursor
// position, output text and which actions are enabled.
func (m *appModel) refresh() {
	m.rows = m.sess.Lines()
	if sel := m.sess.Selected(); sel != nil {
		for i, r := range m.rows {
			if r.ID == *sel {
				m.cursor = i
				break
			}
		}
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.output.SetContent(m.sess.State().Display())
	m.syncEnabled()
}

// selectedID returns the selected node id, or "" when nothing is selected.
func (m appModel) selectedID() string {
	if sel := m.sess.Selected(); sel != nil {
		return *sel
	}
	return ""
}

// selectRow moves the cursor to row i and selects its node.
func (m *appModel) selectRow(i int) {
	if len(m.rows) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.rows) {
		i = len(m.rows) - 1
	}
	m.cursor = i
	id := m.rows[i].ID
	m.sess.Select(&id)
	m.refresh()
}

func (m *appModel) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	paneW := m.width/2 - 2
	if paneW < 20 {
		paneW = 20
	}
	paneH := m.height - 6
	if paneH < 3 {
		paneH = 3
	}
	m.output.Width = paneW - 2
	m.output.Height = paneH
	m.input.Width = paneW - 6
	m.textarea.SetWidth(m.width - 8)
	m.textarea.SetHeight(paneH - 2)
	m.help.Width = m.width
}
