// Package cli holds helpers for command tests. It is separate from testutil
// so that service tests can import testutil without pulling in the CLI.
package cli

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/ledger/internal/app"
	ledgercli "github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/testutil"
)

// TestEnv is an App over two temp-file databases
type TestEnv struct {
	App       *app.App
	StudentDB *sql.DB
	ProductDB *sql.DB
}

// SetupCLITest creates both databases and the App over them
func SetupCLITest(t *testing.T) *TestEnv {
	t.Helper()

	studentDB := testutil.SetupTestDB(t, "students.db")
	productDB := testutil.SetupTestDB(t, "products.db")

	return &TestEnv{
		App:       app.New(studentDB, productDB),
		StudentDB: studentDB,
		ProductDB: productDB,
	}
}

// ExecuteCLICommand executes a CLI command with a test app instance.
// This injects the app through the context the way the root command does.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithInput runs cmd with input as its stdin
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()
	cmd.SetIn(strings.NewReader(input))
	return ExecuteCLICommand(t, testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific
// context and test app and returns its stdout
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	out, err := ExecuteCLICommandOutput(t, ctx, testApp, cmd, args)
	return out.Stdout, err
}

// ExecuteCLICommandOutput is ExecuteCLICommandWithContext returning both
// output streams
func ExecuteCLICommandOutput(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (testutil.CommandOutput, error) {
	t.Helper()

	require.NotNil(t, testApp, "SetupCLITest must be called first")
	return testutil.RunCommand(ledgercli.WithApp(ctx, testApp), cmd, args)
}
