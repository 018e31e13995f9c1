package cli

import (
	"github.com/spf13/cobra"

	"asciitree-cli/internal/render"
)

func newFmtCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [file|-]",
		Short: "Normalize an ASCII tree to the canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readInput(cmd, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			nodes := render.Parse(string(b))
			app.log.WithField("nodes", len(nodes)).Debug("fmt")
			return writeText(cmd, render.Render(nodes))
		},
	}
}
