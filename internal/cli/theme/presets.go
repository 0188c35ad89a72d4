package theme

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/badge"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/cli/styles"
	"github.com/thenoetrevino/sizerating/internal/config/tokens"
)

// PresetsCmd returns the theme presets subcommand
func PresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "presets",
		Short:         "List the built-in theme presets",
		Args:          cli.UsageArgs(cobra.NoArgs),
		RunE:          runPresets,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (preset names only)")

	return cmd
}

func runPresets(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := cli.NewOutputFormatter(jsonOutput, quietMode, cmd.OutOrStdout(), cmd.ErrOrStderr())
	out := cmd.OutOrStdout()

	names := tokens.PresetNames()

	if quietMode {
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	if jsonOutput {
		presets := make([]tokens.ThemeTokens, 0, len(names))
		for _, name := range names {
			presets = append(presets, *tokens.GetPreset(name))
		}
		return formatter.JSONSuccess("presets", presets)
	}

	// Human-readable output with a sample badge per preset
	for _, name := range names {
		preset := *tokens.GetPreset(name)
		sample := badge.RenderTerminal(badge.New(4200, badge.Options{}, preset))
		fmt.Fprintf(out, "%s  %s %s\n", sample, styles.TitleStyle.Render(name), styles.SubtitleStyle.Render(fmt.Sprintf("(%dpx, %s)", preset.ControlHeight, preset.Blue)))
	}

	return nil
}
