package cli

import (
	"github.com/spf13/cobra"

	"asciitree-cli/internal/render"
)

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse an ASCII tree into a node collection",
		Long: `Parse an ASCII tree into a node collection.

Lines without a "├── " or "└── " connector are skipped. Names containing a
"." become files, everything else a folder. Output defaults to JSON; pass
--format edn or --format yaml for the other encodings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readInput(cmd, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			nodes := render.Parse(string(b))
			app.log.WithField("nodes", len(nodes)).Debug("parse")
			return writeNodes(cmd, app, nodes, structuredFormat(app))
		},
	}
}
