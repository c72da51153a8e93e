package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/database"
	"github.com/thenoetrevino/ledger/internal/menu"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and are shared by every subcommand.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage errors and anything not covered below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags or unknown subcommands.
	ExitUsage = 2

	// ExitNotFound indicates an update or delete matched no record.
	ExitNotFound = 3

	// ExitDataErr indicates malformed input.
	// Use for: menu input that is not a number where one is expected.
	ExitDataErr = 4

	// ExitValidation indicates a configuration that failed validation.
	ExitValidation = 5
)

// CommandError carries the process exit code for a failed command
type CommandError struct {
	Code int
	Err  error

	// Reported is set when the command already printed the failure
	Reported bool
}

func (e *CommandError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Exit wraps err with code. A nil err stays nil.
func Exit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Code: code, Err: err}
}

// Reported is Exit for failures the command has already printed
func Reported(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{Code: code, Err: err, Reported: true}
}

// UsageArgs wraps a positional argument validator so its failures exit
// with ExitUsage
func UsageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Exit(ExitUsage, fn(cmd, args))
	}
}

// ValidateFlags runs cobra's required flag and flag group checks ahead of
// command setup, reporting failures as ExitUsage
func ValidateFlags(cmd *cobra.Command) error {
	if err := cmd.ValidateRequiredFlags(); err != nil {
		return Exit(ExitUsage, err)
	}
	return Exit(ExitUsage, cmd.ValidateFlagGroups())
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *CommandError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *menu.ParseError
	switch {
	case errors.As(err, &parseErr):
		return ExitDataErr
	case errors.Is(err, database.ErrNotFound):
		return ExitNotFound
	default:
		return ExitError
	}
}
