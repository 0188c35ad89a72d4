package theme

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/cli/styles"
	"github.com/thenoetrevino/sizerating/internal/config/tokens"
	"github.com/thenoetrevino/sizerating/internal/logging"
)

// ShowCmd returns the theme show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "show",
		Short:         "Show the active theme tokens",
		Long:          "Show the theme tokens badges are rendered with, or those of a built-in preset.",
		Args:          cli.UsageArgs(cobra.NoArgs),
		RunE:          runShow,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("preset", "", "Show a built-in preset instead of the active theme")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := cli.NewOutputFormatter(jsonOutput, false, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitCodeFor(err), err)
	}

	theme := cliInstance.Config.Theme
	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		preset, err := cli.LookupPreset(name)
		if err != nil {
			if fmtErr := formatter.Error("PRESET_NOT_FOUND", err.Error()); fmtErr != nil {
				logging.Logger.Error("formatting error message", "error", fmtErr)
			}
			return cli.NewExitError(cli.ExitNotFound, err)
		}
		theme = *preset
	}

	if jsonOutput {
		return formatter.JSONSuccess("theme", theme)
	}

	printTokens(cmd.OutOrStdout(), theme)
	return nil
}

func printTokens(out io.Writer, t tokens.ThemeTokens) {
	rows := []struct {
		name  string
		value string
	}{
		{"preset", t.Preset},
		{"control_height", px(t.ControlHeight)},
		{"small_control_height", px(t.SmallControlHeight)},
		{"blue", t.Blue + " " + styles.Swatch(t.Blue)},
		{"small_font_size", px(t.SmallFontSize)},
		{"smallest_font_size", px(t.SmallestFontSize)},
	}

	for _, r := range rows {
		fmt.Fprintf(out, "%s %s\n", styles.LabelStyle.Render(r.name+":"), styles.ValueStyle.Render(r.value))
	}
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}
