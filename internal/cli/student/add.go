package student

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
	studentservice "github.com/thenoetrevino/ledger/internal/services/student"
)

// AddCmd returns the student add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		Long: `Add a student record. The ID is assigned by the database.

Examples:
  ledger student add --name "Alice" --department "CS" --marks 88.5
  ledger student add --name "Bob" --department "Math" --marks 72 --json`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(addStudent), handler.CommandConfig{}),
	}

	cmd.Flags().String("name", "", "Student name (required)")
	cmd.Flags().String("department", "", "Department (required)")
	cmd.Flags().Float64("marks", 0, "Marks (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("marks")
	addOutputFlags(cmd)

	return cmd
}

func addStudent(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.StudentService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	created, err := svc.CreateStudent(ctx, studentservice.CreateStudentRequest{
		Name:       args.GetString("name", ""),
		Department: args.GetString("department", ""),
		Marks:      args.GetFloat64("marks", 0),
	})
	if err != nil {
		return nil, err
	}

	return &handler.Result{Data: created, Message: "Student added."}, nil
}
