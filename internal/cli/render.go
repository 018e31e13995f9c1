package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"asciitree-cli/internal/format"
	"asciitree-cli/internal/render"
	"asciitree-cli/internal/store"
)

func newRenderCmd(app *App) *cobra.Command {
	var input string
	var strict bool

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a node collection (JSON or YAML) as an ASCII tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readInput(cmd, args)
			if err != nil {
				return writeErr(cmd, err)
			}
			nodes, err := format.Read(bytes.NewReader(b), input)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := store.Validate(nodes); err != nil {
				if strict {
					return writeErr(cmd, invalidTreeError{source: sourceName(args), err: err})
				}
				app.log.WithError(err).Warn("rendering an inconsistent tree; unreachable nodes are skipped")
			}
			app.log.WithField("nodes", len(nodes)).Debug("render")
			return writeText(cmd, render.Render(nodes))
		},
	}

	cmd.Flags().StringVar(&input, "input", "auto", "Input format (auto|json|yaml|text)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on dangling parents, duplicate ids or cycles")
	return cmd
}
