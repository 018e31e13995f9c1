package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardMsg struct {
	err error
}

// copyToClipboardCmd writes s to the system clipboard off the update loop and
// reports back with a clipboardMsg.
func copyToClipboardCmd(s string) tea.Cmd {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(s)}
	}
}
