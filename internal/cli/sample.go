package cli

import (
	"github.com/spf13/cobra"

	"asciitree-cli/internal/store"
)

func newSampleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the demo tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeNodes(cmd, app, store.Sample(), app.cfg.Format)
		},
	}
}
