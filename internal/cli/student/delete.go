package student

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
)

// DeleteCmd returns the student delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a student",
		Long: `Delete the student with the given ID.
Exits with code 3 when no student has that ID.

Examples:
  ledger student delete --id 1`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(deleteStudent), handler.CommandConfig{NotFound: notFoundMessage}),
	}

	cmd.Flags().Int("id", 0, "Student ID (required)")
	_ = cmd.MarkFlagRequired("id")
	addOutputFlags(cmd)

	return cmd
}

type deleted struct {
	ID int `json:"id"`
}

func (d deleted) GetID() int { return d.ID }

func deleteStudent(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.StudentService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	id := args.GetInt("id", 0)
	if err := svc.DeleteStudent(ctx, id); err != nil {
		return nil, err
	}

	return &handler.Result{Data: deleted{ID: id}, Message: "Student deleted."}, nil
}
