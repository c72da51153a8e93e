package product

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
)

// DeleteCmd returns the product delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a product",
		Long: `Delete the product with the given ID in a single transaction.
Exits with code 3 when no product has that ID.

Examples:
  ledger product delete --id 1`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(deleteProduct), handler.CommandConfig{NotFound: notFoundMessage}),
	}

	cmd.Flags().Int("id", 0, "Product ID (required)")
	_ = cmd.MarkFlagRequired("id")
	addOutputFlags(cmd)

	return cmd
}

type deleted struct {
	ID int `json:"id"`
}

func (d deleted) GetID() int { return d.ID }

func deleteProduct(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.ProductService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	id := args.GetInt("id", 0)
	if err := svc.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}

	return &handler.Result{Data: deleted{ID: id}, Message: "Product deleted."}, nil
}
