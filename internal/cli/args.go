package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// fontSizeArgs checks for exactly FONT and SIZE and reports which one is
// missing.
func fontSizeArgs(cmd *cobra.Command, args []string) error {
	var msg string
	switch {
	case len(args) < 1:
		msg = "requires a font path as first argument"
	case len(args) < 2:
		msg = "requires a font size after the font path"
	case len(args) > 2:
		msg = "too many arguments"
	default:
		return nil
	}
	return fmt.Errorf("%s (usage: %s)", msg, cmd.UseLine())
}

var errInvalidSize = errors.New("invalid font size")

// parseSize parses a positive integer pixel size.
func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w %q: must be a positive integer", errInvalidSize, s)
	}
	return n, nil
}
