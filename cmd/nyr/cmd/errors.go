package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/templui/nyr/internal/service"
)

// recoveryHint suggests what to do next for errors the user can fix.
func recoveryHint(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidTarget):
		return "delete the target and create it again with a non-zero --target-value"
	case errors.Is(err, service.ErrNotFound):
		return `run "nyr targets list" or "nyr records list" to see valid ids`
	case errors.Is(err, service.ErrStorage):
		return "the database could not be read or written; details are in the log file"
	}
	return ""
}

// PrintError writes a user-facing error and an optional hint to w.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(w, "%s %s\n", color.RedString("Error:"), err)
	if hint := recoveryHint(err); hint != "" {
		fmt.Fprintf(w, "%s %s\n", color.YellowString("Hint:"), hint)
	}
}
