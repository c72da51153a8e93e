// Package cmd wires the ledger command tree
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/configcmd"
	"github.com/thenoetrevino/ledger/internal/cli/guide"
	"github.com/thenoetrevino/ledger/internal/cli/product"
	"github.com/thenoetrevino/ledger/internal/cli/student"
	"github.com/thenoetrevino/ledger/internal/cli/styles"
	"github.com/thenoetrevino/ledger/internal/config"
	"github.com/thenoetrevino/ledger/internal/logging"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// skipAppAnnotation marks commands that never touch the databases
const skipAppAnnotation = "skip-app"

type rootOptions struct {
	configPath string
	dataDir    string
	verbose    int

	cli       *cli.CLI
	logCloser io.Closer
}

// NewRootCmd builds the command tree. The returned cleanup closes the
// databases and the log file and must run after Execute.
func NewRootCmd() (*cobra.Command, func()) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger - student and product record managers",
		Long: `Ledger manages two local record books backed by SQLite:
students (students.db) and products (products.db).

Run "ledger student" or "ledger product" for the interactive menu, or use
the add, list, update and delete verbs for scripting.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cli.UsageArgs(cobra.NoArgs),
		Annotations: map[string]string{
			skipAppAnnotation: "true",
		},
		PersistentPreRunE: opts.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/ledger/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Directory holding the database and log files")
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "Log more (-v debug, -vv trace)")

	rootCmd.AddCommand(student.StudentCmd())
	rootCmd.AddCommand(product.ProductCmd())
	rootCmd.AddCommand(guide.GuideCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd, opts.close
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	rootCmd, cleanup := NewRootCmd()
	defer cleanup()

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	logging.Logger.Error().Err(err).Msg("command failed")

	code := cli.ExitCode(err)
	if reportedByCommand(err) {
		return code
	}

	fmt.Fprintln(rootCmd.ErrOrStderr(), styles.ErrorStyle.Render("Error: "+err.Error()))
	return code
}

func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateFlags(cmd); err != nil {
		return err
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return cli.Exit(cli.ExitValidation, err)
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	cfg.Log.Level = logging.LevelForVerbosity(cfg.Log.Level, o.verbose)

	closer, logErr := logging.Init(cfg.Log, cfg.LogFilePath())
	o.logCloser = closer

	styles.Init(cfg.ColorScheme, cfg.Color && isatty.IsTerminal(os.Stdout.Fd()))

	if logErr != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.NoticeStyle.Render("Warning: "+logErr.Error()))
	}

	logging.Logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("data_dir", cfg.DataDir).
		Msg("starting")

	if cmd.Annotations[skipAppAnnotation] == "true" {
		return nil
	}

	c, err := cli.NewCLI(cmd.Context(), cfg)
	if err != nil {
		return cli.Exit(cli.ExitError, err)
	}
	o.cli = c
	cmd.SetContext(cli.WithCLI(cmd.Context(), c))

	return nil
}

func (o *rootOptions) close() {
	if o.cli != nil {
		if err := o.cli.Close(); err != nil {
			logging.Logger.Error().Err(err).Msg("failed to close databases")
		}
		o.cli = nil
	}
	if o.logCloser != nil {
		_ = o.logCloser.Close()
		o.logCloser = nil
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ledger version",
		Args:  cli.UsageArgs(cobra.NoArgs),
		Annotations: map[string]string{
			skipAppAnnotation: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ledger %s\n", Version)
			return err
		},
	}
}
