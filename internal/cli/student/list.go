package student

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
)

// ListCmd returns the student list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all students",
		Long: `List every student in storage order.

Examples:
  ledger student list
  ledger student list --json
  ledger student list --quiet   # one ID per line`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(listStudents), handler.CommandConfig{}),
	}

	addOutputFlags(cmd)

	return cmd
}

func listStudents(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.StudentService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	students, err := svc.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: studentList(students),
		Human: func(w io.Writer) error {
			return writeTable(w, students)
		},
	}, nil
}
