package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// readInput reads the file named by args[0], or stdin when there is no
// argument or it is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, inputError{path: "-", err: err}
		}
		return b, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, inputError{path: args[0], err: err}
	}
	return b, nil
}
