package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"asciitree-cli/internal/format"
	"asciitree-cli/internal/store"
)

func newCheckCmd(app *App) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "check [file|-]",
		Short: "Validate a node collection",
		Long: `Validate a node collection.

Reports empty or duplicate ids, parents that do not exist and parent cycles.
Exits non-zero when the collection is inconsistent.`,
		Args: cobra.MaximumNArgs(1),
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
				return writeErr(cmd, invalidTreeError{source: sourceName(args), err: err})
			}
			return writeText(cmd, fmt.Sprintf("ok: %d nodes\n", len(nodes)))
		},
	}

	cmd.Flags().StringVar(&input, "input", "auto", "Input format (auto|json|yaml|text)")
	return cmd
}
