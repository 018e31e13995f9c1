package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"asciitree-cli/internal/docs"
	"asciitree-cli/internal/format"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				topics := docs.Topics()
				if app.cfg.Format == "text" {
					return writeText(cmd, strings.Join(topics, "\n")+"\n")
				}
				return format.WriteJSON(cmd.OutOrStdout(), map[string]any{"topics": topics}, app.cfg.Pretty)
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `asciitree docs` to list topics)", topic))
			}
			if raw {
				return writeText(cmd, body)
			}

			out, err := glamour.Render(body, "notty")
			if err != nil {
				app.log.WithError(err).Debug("markdown render failed; printing raw")
				return writeText(cmd, body)
			}
			return writeText(cmd, out)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	return cmd
}
