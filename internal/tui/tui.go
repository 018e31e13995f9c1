package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"asciitree-cli/internal/debug"
	"asciitree-cli/internal/session"
)

type Options struct {
	// Glyphs selects the affordance glyph set: "unicode" or "ascii".
	Glyphs string
	Logger *logrus.Logger
}

func Run(sess *session.Session, opts Options) error {
	gs, ok := parseGlyphSet(opts.Glyphs)
	if !ok {
		return fmt.Errorf("invalid glyph set %q (expected unicode|ascii)", opts.Glyphs)
	}
	setGlyphs(gs)

	log := opts.Logger
	if log == nil {
		log = debug.Discard()
	}

	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(sess, log)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
