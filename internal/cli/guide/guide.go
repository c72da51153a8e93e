// Package guide provides the `ledger guide` command
package guide

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/ledger/internal/cli"
	"github.com/thenoetrevino/ledger/internal/cli/styles"
)

//go:embed guide.md
var guideContent string

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the usage guide",
		Long: `Show the ledger usage guide: menus, scripting verbs, exit codes
and configuration.

Examples:
  ledger guide
  ledger guide --raw > GUIDE.md`,
		Args: cli.UsageArgs(cobra.NoArgs),
		Annotations: map[string]string{
			"skip-app": "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			width, _ := cmd.Flags().GetInt("width")

			out := guideContent
			if !raw {
				out = Render(guideContent, width, styles.Enabled)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().Bool("raw", false, "Print the markdown source")
	cmd.Flags().Int("width", 80, "Word wrap width")

	return cmd
}

// Render renders markdown for the terminal. Without colour the notty
// style is used. On failure the markdown is returned unchanged.
func Render(markdown string, width int, color bool) string {
	styleOpt := glamour.WithStandardStyle("notty")
	if color {
		styleOpt = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(
		styleOpt,
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
