package tui

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestThemeDark(t *testing.T) {
	cases := []struct {
		theme, fgbg string
		dark, ok    bool
	}{
		{"light", "15;0", false, true},
		{"dark", "", true, true},
		{"", "15;0", true, true},
		{"", "0;15", false, true},
		{"", "0;default;15", false, true},
		{"auto", "", false, false},
		{"", "garbage", false, false},
	}
	for _, tc := range cases {
		dark, ok := themeDark(tc.theme, tc.fgbg)
		assert.Equal(t, tc.ok, ok, "theme=%q fgbg=%q", tc.theme, tc.fgbg)
		if tc.ok {
			assert.Equal(t, tc.dark, dark, "theme=%q fgbg=%q", tc.theme, tc.fgbg)
		}
	}
}

func TestUpgradeProfile(t *testing.T) {
	assert.Equal(t, termenv.Ascii, upgradeProfile(termenv.Ascii, "truecolor", "xterm-256color"))
	assert.Equal(t, termenv.TrueColor, upgradeProfile(termenv.ANSI, "24bit", ""))
	assert.Equal(t, termenv.ANSI256, upgradeProfile(termenv.ANSI, "", "xterm-256color"))
	assert.Equal(t, termenv.ANSI, upgradeProfile(termenv.ANSI, "", "xterm"))
}
