package cli

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ledger/internal/database"
	"github.com/thenoetrevino/ledger/internal/menu"
)

func TestExitCode(t *testing.T) {
	_, atoiErr := strconv.Atoi("x")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), want: ExitError},
		{name: "explicit code", err: Exit(ExitValidation, errors.New("bad level")), want: ExitValidation},
		{name: "reported", err: Reported(ExitNotFound, database.ErrNotFound), want: ExitNotFound},
		{name: "wrapped not found", err: fmt.Errorf("student %w", database.ErrNotFound), want: ExitNotFound},
		{name: "parse error", err: &menu.ParseError{Input: "x", Kind: "integer", Err: atoiErr}, want: ExitDataErr},
		{name: "wrapped parse error", err: fmt.Errorf("menu: %w", &menu.ParseError{Input: "x", Kind: "number", Err: atoiErr}), want: ExitDataErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitNil(t *testing.T) {
	assert.NoError(t, Exit(ExitError, nil))
	assert.NoError(t, Reported(ExitError, nil))
}

func TestExitErrorUnwrap(t *testing.T) {
	err := Exit(ExitNotFound, database.ErrNotFound)

	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.Equal(t, database.ErrNotFound.Error(), err.Error())

	var exitErr *CommandError
	assert.ErrorAs(t, err, &exitErr)
	assert.False(t, exitErr.Reported)
}

func TestUsageArgs(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	validate := UsageArgs(cobra.NoArgs)

	assert.NoError(t, validate(cmd, nil))

	err := validate(cmd, []string{"extra"})
	require.Error(t, err)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.Contains(t, err.Error(), `unknown command "extra"`)
}

func TestValidateFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "add"}
		cmd.Flags().String("name", "", "")
		cmd.Flags().Bool("json", false, "")
		cmd.Flags().Bool("quiet", false, "")
		_ = cmd.MarkFlagRequired("name")
		cmd.MarkFlagsMutuallyExclusive("json", "quiet")
		return cmd
	}

	t.Run("missing required", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.ParseFlags([]string{}))
		assert.Equal(t, ExitUsage, ExitCode(ValidateFlags(cmd)))
	})

	t.Run("exclusive group", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--name", "Alice", "--json", "--quiet"}))
		assert.Equal(t, ExitUsage, ExitCode(ValidateFlags(cmd)))
	})

	t.Run("valid", func(t *testing.T) {
		cmd := newCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--name", "Alice", "--json"}))
		assert.NoError(t, ValidateFlags(cmd))
	})
}
