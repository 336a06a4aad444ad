package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pkgflag/internal/cli"
	"github.com/arthur-debert/pkgflag/pkg/errors"
	"github.com/arthur-debert/pkgflag/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err))
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for unusable arguments, 1 for everything else.
func exitCode(err error) int {
	if errors.IsParseError(err) || errors.IsErrorCode(err, errors.ErrInvalidInput) {
		return 2
	}
	return 1
}
