package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"asciitree-cli/internal/debug"
	"asciitree-cli/internal/model"
	"asciitree-cli/internal/session"
)

const sampleText = "└── Root\n" +
	"    ├── A\n" +
	"    │   └── C\n" +
	"    └── B\n"

func sampleNodes() []model.Node {
	return []model.Node{
		{ID: "r", Name: "Root"},
		{ID: "a", ParentID: model.StrPtr("r"), Name: "A"},
		{ID: "b", ParentID: model.StrPtr("r"), Name: "B"},
		{ID: "c", ParentID: model.StrPtr("a"), Name: "C"},
	}
}

func newTestModel(t *testing.T, nodes []model.Node) appModel {
	t.Helper()
	sess := session.New(session.WithNodes(nodes))
	return newAppModel(sess, debug.Discard())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m appModel, msgs ...tea.Msg) appModel {
	t.Helper()
	for _, msg := range msgs {
		mm, _ := m.Update(msg)
		next, ok := mm.(appModel)
		if !ok {
			t.Fatalf("unexpected model type %T", mm)
		}
		m = next
	}
	return m
}

func TestNavigation_SelectsRowsInDisplayOrder(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	if m.selectedID() != "" {
		t.Fatalf("expected no selection at start")
	}

	m = press(t, m, runes("j"))
	if got := m.selectedID(); got != "r" {
		t.Fatalf("expected first down to select the first row; got %q", got)
	}
	m = press(t, m, runes("j"), runes("j"))
	if got := m.selectedID(); got != "c" {
		t.Fatalf("expected C (rows follow render order); got %q", got)
	}
	m = press(t, m, runes("j"), runes("j"))
	if got := m.selectedID(); got != "b" {
		t.Fatalf("expected cursor to clamp at the last row; got %q", got)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.selectedID() != "" {
		t.Fatalf("expected esc to deselect")
	}
}

func TestIndentThenUndo(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	// Root, A, C, B: B is the fourth row.
	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("j"))
	if got := m.selectedID(); got != "b" {
		t.Fatalf("expected B selected; got %q", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	// B keeps its sequence position, which is ahead of C.
	want := "└── Root\n" +
		"    └── A\n" +
		"        ├── B\n" +
		"        └── C\n"
	if got := m.sess.Render(); got != want {
		t.Fatalf("after indent:\n%s\nwant:\n%s", got, want)
	}
	if got := m.selectedID(); got != "b" {
		t.Fatalf("expected selection to follow the moved node; got %q", got)
	}

	m = press(t, m, runes("u"))
	if got := m.sess.Render(); got != sampleText {
		t.Fatalf("after undo:\n%s\nwant:\n%s", got, sampleText)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.sess.Render(); got != want {
		t.Fatalf("after redo:\n%s\nwant:\n%s", got, want)
	}
}

func TestIndentDisabledForFirstSibling(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	m = press(t, m, runes("j"), runes("j")) // A
	if m.keys.Indent.Enabled() {
		t.Fatalf("expected indent disabled for the first child")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.sess.Render(); got != sampleText {
		t.Fatalf("expected no change; got:\n%s", got)
	}
	if m.sess.CanUndo() {
		t.Fatalf("no-op must not record history")
	}
}

func TestAddUnderSelection(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, runes("a"))
	if m.mode != modeAdd {
		t.Fatalf("expected add mode; got %v", m.mode)
	}
	m = press(t, m, runes("Root"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeTree {
		t.Fatalf("expected tree mode after enter; got %v", m.mode)
	}
	if got := m.sess.Render(); got != "└── Root\n" {
		t.Fatalf("unexpected render: %q", got)
	}

	m = press(t, m, runes("j"), runes("a"), runes("x.go"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.sess.Render(); got != "└── Root\n    └── x.go\n" {
		t.Fatalf("expected child under selected root; got %q", got)
	}
}

func TestAddEmptyNameSetsError(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.statusIsErr || m.status == "" {
		t.Fatalf("expected an error status; got %q", m.status)
	}
	if len(m.sess.Nodes()) != 0 {
		t.Fatalf("expected no node to be added")
	}
}

func TestRenameSelected(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	m = press(t, m, runes("j"), runes("r"))
	if got := m.input.Value(); got != "Root" {
		t.Fatalf("expected rename input to start with current name; got %q", got)
	}
	m.input.SetValue("Top")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.HasPrefix(m.sess.Render(), "└── Top\n") {
		t.Fatalf("expected rename; got:\n%s", m.sess.Render())
	}
}

func TestDeleteClearsSelection(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	m = press(t, m, runes("j"), runes("j"), runes("d"))
	if got := m.sess.Render(); got != "└── Root\n    └── B\n" {
		t.Fatalf("expected A and C deleted; got:\n%s", got)
	}
	if m.selectedID() != "" {
		t.Fatalf("expected selection cleared after delete")
	}
}

func TestImport(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, runes("i"))
	if m.mode != modeImport {
		t.Fatalf("expected import mode; got %v", m.mode)
	}
	m.textarea.SetValue(sampleText)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if got := m.sess.Render(); got != sampleText {
		t.Fatalf("unexpected import result:\n%s", got)
	}
	if len(m.rows) != 4 {
		t.Fatalf("expected 4 rows; got %d", len(m.rows))
	}
}

func TestClearRequiresConfirmation(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	m = press(t, m, runes("C"), runes("n"))
	if len(m.sess.Nodes()) != 4 {
		t.Fatalf("expected clear to be cancelled")
	}
	m = press(t, m, runes("C"), runes("y"))
	if len(m.sess.Nodes()) != 0 {
		t.Fatalf("expected tree cleared")
	}
	if !strings.Contains(m.View(), "Tree is empty") {
		t.Fatalf("expected placeholder in view")
	}
}

func TestSetKind(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	m = press(t, m, runes("j"), runes("F"))
	if got := m.sess.Nodes()[0].Kind; got != model.KindFolder {
		t.Fatalf("expected folder kind; got %q", got)
	}
}

func TestClipboardStatus(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	m = press(t, m, clipboardMsg{err: errors.New("no clipboard")})
	if !m.statusIsErr || !strings.Contains(m.status, "no clipboard") {
		t.Fatalf("expected error status; got %q", m.status)
	}

	seq := m.statusSeq
	m = press(t, m, statusClearMsg{seq: seq - 1})
	if m.status == "" {
		t.Fatalf("stale clear must not wipe the current status")
	}
	m = press(t, m, statusClearMsg{seq: seq})
	if m.status != "" {
		t.Fatalf("expected status cleared")
	}
}

func TestView_ShowsTreeAndText(t *testing.T) {
	m := newTestModel(t, sampleNodes())
	m = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	v := xansi.Strip(m.View())
	if !strings.Contains(v, "└── Root") {
		t.Fatalf("expected rendered tree in view:\n%s", v)
	}
}

func TestInstructionsToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m = press(t, m, runes("?"))
	if m.mode != modeInstructions {
		t.Fatalf("expected instructions mode")
	}
	if v := xansi.Strip(m.View()); !strings.Contains(v, "Instructions") {
		t.Fatalf("expected instructions text:\n%s", v)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeTree {
		t.Fatalf("expected esc to close instructions")
	}
}
