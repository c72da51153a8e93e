package product

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/handler"
)

// ListCmd returns the product list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all products",
		Long: `List every product in storage order.

Examples:
  ledger product list
  ledger product list --json`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: handler.Command(handler.HandlerFunc(listProducts), handler.CommandConfig{}),
	}

	addOutputFlags(cmd)

	return cmd
}

func listProducts(ctx context.Context, args *handler.Arguments) (*handler.Result, error) {
	svc := args.CLI.App.ProductService
	if err := svc.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	products, err := svc.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	return &handler.Result{
		Data: productList(products),
		Human: func(w io.Writer) error {
			return writeTable(w, products)
		},
	}, nil
}
