package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Indent    key.Binding
	Unindent  key.Binding
	Add       key.Binding
	Rename    key.Binding
	Delete    key.Binding
	SetFile   key.Binding
	SetFolder key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Import    key.Binding
	Copy      key.Binding
	Clear     key.Binding
	Deselect  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		MoveUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "move up")),
		MoveDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "move down")),
		Indent:    key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab", "indent")),
		Unindent:  key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("S-tab", "unindent")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:    key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		SetFile:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "file")),
		SetFolder: key.NewBinding(key.WithKeys("F"), key.WithHelp("F", "folder")),
		Undo:      key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+r", "U"), key.WithHelp("ctrl+r", "redo")),
		Import:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Clear:     key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear")),
		Deselect:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "deselect")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "instructions")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Indent, k.Unindent, k.MoveUp, k.MoveDown, k.Undo, k.Redo, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Deselect},
		{k.Add, k.Rename, k.Delete, k.SetFile, k.SetFolder},
		{k.Indent, k.Unindent, k.MoveUp, k.MoveDown},
		{k.Undo, k.Redo, k.Import, k.Copy, k.Clear},
		{k.Help, k.Quit},
	}
}

// syncEnabled mirrors the legality queries onto the bindings so the help bar
// only advertises actions that would do something.
func (m *appModel) syncEnabled() {
	st := m.sess.State()
	sel := st.Selected
	has := sel != nil
	id := ""
	if has {
		id = *sel
	}
	m.keys.Rename.SetEnabled(has)
	m.keys.Delete.SetEnabled(has)
	m.keys.SetFile.SetEnabled(has)
	m.keys.SetFolder.SetEnabled(has)
	m.keys.Indent.SetEnabled(has && m.sess.CanIndent(id))
	m.keys.Unindent.SetEnabled(has && m.sess.CanUnindent(id))
	m.keys.MoveUp.SetEnabled(has && m.sess.CanMoveUp(id))
	m.keys.MoveDown.SetEnabled(has && m.sess.CanMoveDown(id))
	m.keys.Undo.SetEnabled(st.CanUndo)
	m.keys.Redo.SetEnabled(st.CanRedo)
	m.keys.Copy.SetEnabled(!st.Empty())
	m.keys.Clear.SetEnabled(!st.Empty())
	m.keys.Deselect.SetEnabled(has)
}
