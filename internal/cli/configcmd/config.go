// Package configcmd provides the `ledger config` command
package configcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/styles"
	"github.com/thenoetrevino/ledger/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
		Long: `Inspect or create the ledger config file.

The file is read from --config when given, otherwise from
$XDG_CONFIG_HOME/ledger/config.yaml or ~/.config/ledger/config.yaml.`,
		Args: cli.UsageArgs(cobra.NoArgs),
		Annotations: map[string]string{
			"skip-app": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(pathCmd())
	cmd.AddCommand(initCmd())

	return cmd
}

func pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cli.UsageArgs(cobra.NoArgs),
		Annotations: map[string]string{
			"skip-app": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Write a config file holding the default settings.

An existing file is left alone unless --force is given.

Examples:
  ledger config init
  ledger --config ./ledger.yaml config init --force`,
		Args: cli.UsageArgs(cobra.NoArgs),
		Annotations: map[string]string{
			"skip-app": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			path, err := configPath(cmd)
			if err != nil {
				return err
			}

			if !force {
				if _, err := os.Stat(path); err == nil {
					return cli.Exit(cli.ExitValidation, fmt.Errorf("config file %s already exists (use --force to overwrite)", path))
				} else if !errors.Is(err, fs.ErrNotExist) {
					return err
				}
			}

			if err := config.Default().Save(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.SuccessStyle.Render("Wrote "+path))
			return err
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	return cmd
}

// configPath is the file Load would read for this invocation
func configPath(cmd *cobra.Command) (string, error) {
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}
	return config.DefaultPath()
}
