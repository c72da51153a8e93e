package product

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
	productservice "github.com/thenoetrevino/ledger/internal/services/product"
)

// AddCmd returns the product add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Long: `Add a product record in a single transaction.

Examples:
  ledger product add --name "Widget" --price 2.50 --quantity 10
  ledger product add --name "Gadget" --price 10 --quantity 1 --json`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(addProduct), handler.CommandConfig{}),
	}

	cmd.Flags().String("name", "", "Product name (required)")
	cmd.Flags().Float64("price", 0, "Unit price (required)")
	cmd.Flags().Int("quantity", 0, "Quantity in stock (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("quantity")
	addOutputFlags(cmd)

	return cmd
}

func addProduct(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.ProductService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	created, err := svc.CreateProduct(ctx, productservice.CreateProductRequest{
		Name:     args.GetString("name", ""),
		Price:    args.GetFloat64("price", 0),
		Quantity: args.GetInt("quantity", 0),
	})
	if err != nil {
		return nil, err
	}

	return &handler.Result{Data: created, Message: "Product added."}, nil
}
