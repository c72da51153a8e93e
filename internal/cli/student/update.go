package student

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
	"github.com/thenoetrevino/ledger/internal/models"
	studentservice "github.com/thenoetrevino/ledger/internal/services/student"
)

// UpdateCmd returns the student update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a student's fields",
		Long: `Replace every field of the student with the given ID.
Exits with code 3 when no student has that ID.

Examples:
  ledger student update --id 1 --name "Alice" --department "EE" --marks 91`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(updateStudent), handler.CommandConfig{NotFound: notFoundMessage}),
	}

	cmd.Flags().Int("id", 0, "Student ID (required)")
	cmd.Flags().String("name", "", "New name (required)")
	cmd.Flags().String("department", "", "New department (required)")
	cmd.Flags().Float64("marks", 0, "New marks (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("department")
	_ = cmd.MarkFlagRequired("marks")
	addOutputFlags(cmd)

	return cmd
}

func updateStudent(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.StudentService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	req := studentservice.UpdateStudentRequest{
		ID:         args.GetInt("id", 0),
		Name:       args.GetString("name", ""),
		Department: args.GetString("department", ""),
		Marks:      args.GetFloat64("marks", 0),
	}
	if err := svc.UpdateStudent(ctx, req); err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: &models.Student{
			ID:         req.ID,
			Name:       req.Name,
			Department: req.Department,
			Marks:      req.Marks,
		},
		Message: "Student updated.",
	}, nil
}
