// Package product provides the `ledger product` command. Every write runs
// in its own transaction.
package product

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
)

const notFoundMessage = "Product ID not found."

// ProductCmd returns the product parent command
func ProductCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage product records",
		Long: `Manage product records stored in products.db.

Without a subcommand an interactive menu is started.

Examples:
  # Interactive menu
  ledger product

  # Add a product and print only the new ID
  ledger product add --name "Widget" --price 2.50 --quantity 10 --quiet

  # Change a product
  ledger product update --id 1 --name "Widget" --price 3 --quantity 8`,
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
	return RunMenu(cmd.Context(), c.App.ProductService, cmd.InOrStdin(), cmd.OutOrStdout())
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
	cmd.MarkFlagsMutuallyExclusive("json", "quiet")
}
