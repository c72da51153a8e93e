package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
)

// reportedByCommand reports whether the command already printed err
func reportedByCommand(err error) bool {
	var exitErr *cli.CommandError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// flagError marks flag parsing failures as usage errors
func flagError(cmd *cobra.Command, err error) error {
	return cli.Exit(cli.ExitUsage, err)
}
