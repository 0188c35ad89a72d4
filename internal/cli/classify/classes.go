package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/cli/styles"
	"github.com/thenoetrevino/sizerating/internal/sizerating"
)

// BandInfo is the JSON shape of a classification band.
// Upper is nil for the open-ended band.
type BandInfo struct {
	Class sizerating.SizeClass `json:"class"`
	Lower float64              `json:"lower"`
	Upper *float64             `json:"upper"`
}

// ClassesCmd returns the classes command
func ClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "classes",
		Short:         "List the size classes and their ranges",
		Args:          cli.UsageArgs(cobra.NoArgs),
		RunE:          runClasses,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (class names only)")

	return cmd
}

func bandInfos() []BandInfo {
	bands := sizerating.Bands()
	infos := make([]BandInfo, 0, len(bands))
	for _, b := range bands {
		info := BandInfo{Class: b.Class, Lower: b.Lower}
		if !math.IsInf(b.Upper, 1) {
			upper := b.Upper
			info.Upper = &upper
		}
		infos = append(infos, info)
	}
	return infos
}

func runClasses(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := cli.NewOutputFormatter(jsonOutput, quietMode, cmd.OutOrStdout(), cmd.ErrOrStderr())
	out := cmd.OutOrStdout()
	infos := bandInfos()

	if quietMode {
		for _, info := range infos {
			fmt.Fprintln(out, info.Class)
		}
		return nil
	}

	if jsonOutput {
		return formatter.JSONSuccess("classes", infos)
	}

	fmt.Fprintln(out, styles.TitleStyle.Render(joinClasses(sizerating.Classes())))
	for _, info := range infos {
		var rng string
		if info.Upper == nil {
			rng = fmt.Sprintf("%s and above", cli.FormatValue(info.Lower))
		} else {
			rng = fmt.Sprintf("[%s, %s)", cli.FormatValue(info.Lower), cli.FormatValue(*info.Upper))
		}
		fmt.Fprintf(out, "  %-2s  %s\n", styles.LabelStyle.Render(info.Class.String()), styles.ValueStyle.Render(rng))
	}

	return nil
}

func joinClasses(classes []sizerating.SizeClass) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " < ")
}
