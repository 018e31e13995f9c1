package main

import (
	"os"
	"path/filepath"
	"strings"

	"asciitree-cli/internal/cli"
)

func isTreeFile(s string) bool {
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(s))) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// rewriteDirectRenderArgs makes `asciitree tree.json` work like
// `asciitree render tree.json`. Cobra treats the first non-flag token as a
// subcommand, so argv is rewritten before parsing.
func rewriteDirectRenderArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":        true,
		"--format":        true,
		"--debug-log":     true,
		"--history-limit": true,
		"--glyphs":        true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token.
		if isTreeFile(a) {
			out := make([]string, 0, len(argv)+1)
			out = append(out, argv[:i]...)
			out = append(out, "render")
			out = append(out, argv[i:]...)
			return out
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteDirectRenderArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
