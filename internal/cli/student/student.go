// Package student provides the `ledger student` command: the interactive
// menu plus flag-driven add, list, update and delete verbs.
package student

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
)

const notFoundMessage = "Student ID not found."

// StudentCmd returns the student parent command
func StudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage student records",
		Long: `Manage student records stored in students.db.

Without a subcommand an interactive menu is started.

Examples:
  # Interactive menu
  ledger student

  # Add a student and print only the new ID
  ledger student add --name "Alice" --department "CS" --marks 88.5 --quiet

  # List all students as JSON
  ledger student list --json`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runMenu,
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func runMenu(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return cli.Exit(cli.ExitError, err)
	}
	return RunMenu(cmd.Context(), c.App.StudentService, cmd.InOrStdin(), cmd.OutOrStdout())
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
	cmd.MarkFlagsMutuallyExclusive("json", "quiet")
}
