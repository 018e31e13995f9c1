package cli

import (
	"fmt"
)

type inputError struct {
	path string
	err  error
}

func (e inputError) Error() string {
	if e.path == "-" {
		return fmt.Sprintf("read stdin: %v", e.err)
	}
	return fmt.Sprintf("read %s: %v", e.path, e.err)
}

func (e inputError) Unwrap() error { return e.err }

type invalidTreeError struct {
	source string
	err    error
}

func (e invalidTreeError) Error() string {
	return fmt.Sprintf("invalid tree in %s: %v", e.source, e.err)
}

func (e invalidTreeError) Unwrap() error { return e.err }

func sourceName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "stdin"
	}
	return args[0]
}
