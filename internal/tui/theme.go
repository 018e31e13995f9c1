package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// The TUI must stay readable on both light and dark terminal backgrounds, so
// colors are lipgloss.AdaptiveColor pairs and "faint" is only applied on dark
// backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      lipgloss.TerminalColor = ac("240", "243")
	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorDescendant lipgloss.TerminalColor = ac("27", "111")
	colorBorder     lipgloss.TerminalColor = ac("250", "243")
	colorAccent     lipgloss.TerminalColor = ac("27", "62")
	colorInputBg    lipgloss.TerminalColor = ac("254", "234")
	colorErrorFg    lipgloss.TerminalColor = ac("160", "203")
	colorOKFg       lipgloss.TerminalColor = ac("28", "114")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleSelectedRow() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Bold(true)
}

func styleDescendantRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorDescendant)
}

func stylePane(focused bool) lipgloss.Style {
	border := colorBorder
	if focused {
		border = colorAccent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

func styleTitle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
}

func styleStatus(isErr bool) lipgloss.Style {
	if isErr {
		return lipgloss.NewStyle().Foreground(colorErrorFg)
	}
	return lipgloss.NewStyle().Foreground(colorOKFg)
}

func envLower(name string) string {
	return strings.ToLower(strings.TrimSpace(os.Getenv(name)))
}

// applyColorProfilePreference picks the lipgloss color profile. Only NO_COLOR
// turns colors off; CLICOLOR is ignored because termenv's env lookup would
// honor it. COLORTERM and TERM can upgrade what termenv detected.
func applyColorProfilePreference() {
	if envLower("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(upgradeProfile(termenv.ColorProfile(), envLower("COLORTERM"), envLower("TERM")))
}

func upgradeProfile(p termenv.Profile, colorterm, term string) termenv.Profile {
	switch {
	case p == termenv.Ascii:
		return p
	case colorterm == "truecolor" || colorterm == "24bit":
		return termenv.TrueColor
	case strings.HasSuffix(term, "256color") && p == termenv.ANSI:
		return termenv.ANSI256
	}
	return p
}

// applyThemePreference sets the background lipgloss assumes:
// ASCIITREE_TUI_THEME wins, then the bg half of COLORFGBG ("fg;bg").
func applyThemePreference() {
	if dark, ok := themeDark(envLower("ASCIITREE_TUI_THEME"), os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

func themeDark(theme, colorfgbg string) (dark, ok bool) {
	switch theme {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	i := strings.LastIndexByte(colorfgbg, ';')
	bg, err := strconv.Atoi(strings.TrimSpace(colorfgbg[i+1:]))
	if err != nil {
		return false, false
	}
	return bg < 7, true
}
