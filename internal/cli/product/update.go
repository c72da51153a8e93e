package product

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
	"github.com/thenoetrevino/ledger/internal/models"
	productservice "github.com/thenoetrevino/ledger/internal/services/product"
)

// UpdateCmd returns the product update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a product's fields",
		Long: `Replace every field of the product with the given ID.
The change is committed only when a row matched; otherwise it is rolled
back and the command exits with code 3.

Examples:
  ledger product update --id 1 --name "Widget" --price 3 --quantity 8`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(updateProduct), handler.CommandConfig{NotFound: notFoundMessage}),
	}

	cmd.Flags().Int("id", 0, "Product ID (required)")
	cmd.Flags().String("name", "", "New product name (required)")
	cmd.Flags().Float64("price", 0, "New unit price (required)")
	cmd.Flags().Int("quantity", 0, "New quantity (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("quantity")
	addOutputFlags(cmd)

	return cmd
}

func updateProduct(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.ProductService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	req := productservice.UpdateProductRequest{
		ID:       args.GetInt("id", 0),
		Name:     args.GetString("name", ""),
		Price:    args.GetFloat64("price", 0),
		Quantity: args.GetInt("quantity", 0),
	}
	if err := svc.UpdateProduct(ctx, req); err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: &models.Product{
			ID:       req.ID,
			Name:     req.Name,
			Price:    req.Price,
			Quantity: req.Quantity,
		},
		Message: "Product updated.",
	}, nil
}
