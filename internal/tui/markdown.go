package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"

	"asciitree-cli/internal/docs"
)

type mdKey struct {
	style string
	width int
}

// mdCache holds one glamour renderer per (style, width). Styles are fixed up
// front: WithAutoStyle queries the terminal and can block.
type mdCache struct {
	mu        sync.Mutex
	renderers map[mdKey]*glamour.TermRenderer
}

var instructionsRenderer = &mdCache{renderers: map[mdKey]*glamour.TermRenderer{}}

func instructionsMarkdown() string {
	return docs.MustGet("tui")
}

func renderMarkdown(md string, width int) string {
	return instructionsRenderer.render(md, width)
}

func (c *mdCache) render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	r, err := c.get(mdKey{style: markdownStyle(), width: max(width, 10)})
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (c *mdCache) get(k mdKey) (*glamour.TermRenderer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if r, ok := c.renderers[k]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(flatStyle(k.style)),
		glamour.WithWordWrap(k.width),
	)
	if err != nil {
		return nil, err
	}
	c.renderers[k] = r
	return r, nil
}

// flatStyle is the named glamour style without the document margin, so the
// instructions line up with the panes.
func flatStyle(name string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if name == "light" {
		cfg = styles.LightStyleConfig
	}
	var zero uint
	cfg.Document.Margin = &zero
	return cfg
}

func markdownStyle() string {
	if t := envLower("ASCIITREE_TUI_THEME"); t == "light" || t == "dark" {
		return t
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
