// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/styles"
	"github.com/thenoetrevino/ledger/internal/database"
	"github.com/thenoetrevino/ledger/internal/logging"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, args *Arguments) (*Result, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, args *Arguments) (*Result, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, args *Arguments) (*Result, error) {
	return f(ctx, args)
}

// Result is what a handler hands back for output
type Result struct {
	Data    any
	Message string // human-readable line

	// Human replaces Message in human-readable mode when set
	Human func(w io.Writer) error
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	CLI   *cli.CLI
}

// CommandConfig holds configuration for command execution
type CommandConfig struct {
	// NotFound is printed when the handler reports database.ErrNotFound
	NotFound string
}

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, cfg CommandConfig) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		c, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return cli.Exit(cli.ExitError, err)
		}

		// Get formatter from flags
		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{
			JSON:   jsonOutput,
			Quiet:  quietMode,
			Out:    cmd.OutOrStdout(),
			ErrOut: cmd.ErrOrStderr(),
		}

		// Build arguments map from all flags
		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			CLI:   c,
		}

		result, err := handler.Execute(ctx, arguments)
		if err != nil {
			return reportError(formatter, cfg, err)
		}

		if result == nil {
			result = &Result{}
		}

		if result.Human != nil && !formatter.JSON && !formatter.Quiet {
			return result.Human(formatter.Out)
		}
		return formatter.Success(result.Data, result.Message)
	}
}

func reportError(f *cli.OutputFormatter, cfg CommandConfig, err error) error {
	if errors.Is(err, database.ErrNotFound) {
		message := cfg.NotFound
		if message == "" {
			message = err.Error()
		}
		switch {
		case f.JSON:
			_ = f.Error("NOT_FOUND", message)
		case !f.Quiet:
			fmt.Fprintln(f.Out, styles.NoticeStyle.Render(message))
		}
		return cli.Reported(cli.ExitNotFound, err)
	}

	_ = f.Error("STORAGE_ERROR", err.Error())
	return cli.Reported(cli.ExitError, err)
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "float64":
			if v, err := cmd.Flags().GetFloat64(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			logging.Logger.Debug().Str("flag", f.Name).Str("type", f.Value.Type()).Msg("unsupported flag type")
		}
	})

	return flags
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetFloat64 retrieves a float64 flag with default
func (a *Arguments) GetFloat64(name string, defaultVal float64) float64 {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(float64)
	if !ok {
		return defaultVal
	}
	return val
}
