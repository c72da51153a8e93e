package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CommandOutput is what a command wrote to each of its streams
type CommandOutput struct {
	Stdout string
	Stderr string
}

// RunCommand executes cmd with args under ctx. Both output streams go to
// buffers, so commands must write through cmd.OutOrStdout and
// cmd.ErrOrStderr to be observed.
func RunCommand(ctx context.Context, cmd *cobra.Command, args []string) (CommandOutput, error) {
	// A nil slice makes cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	return CommandOutput{Stdout: stdout.String(), Stderr: stderr.String()}, err
}

// ExecuteCommand runs cmd without an application and returns its stdout
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out, err := RunCommand(context.Background(), cmd, args)
	return out.Stdout, err
}

// ParseJSON decodes a single JSON object written by a --json command
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}
