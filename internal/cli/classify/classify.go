package classify

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/badge"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/cli/styles"
	"github.com/thenoetrevino/sizerating/internal/logging"
	"github.com/thenoetrevino/sizerating/internal/sizerating"
)

const valueSuggestion = "values must be non-negative numbers such as 1200, 12,000 or 12k"

// Result is the classification of a single metric
type Result struct {
	Input string               `json:"input"`
	Value float64              `json:"value"`
	Class sizerating.SizeClass `json:"class"`
}

// ClassifyCmd returns the classify command
func ClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify VALUE...",
		Short: "Classify size metrics into XS, S, M, L or XL",
		Long: `Classify one or more size metrics (for example lines of code).

Each value must be a non-negative number. Thousands separators and the
suffixes k, M and G are accepted: 12,000 and 12k are the same value.`,
		Args:          cli.UsageArgs(cobra.MinimumNArgs(1)),
		RunE:          runClassify,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (class only)")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := cli.NewOutputFormatter(jsonOutput, quietMode, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitCodeFor(err), err)
	}

	results := make([]Result, 0, len(args))
	for _, arg := range args {
		value, err := cli.ParseValue(arg)
		if err == nil {
			err = sizerating.Validate(value)
		}
		if err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_VALUE", err.Error(), valueSuggestion); fmtErr != nil {
				logging.Logger.Error("formatting error message", "error", fmtErr)
			}
			return cli.NewExitError(cli.ExitValidation, err)
		}

		class := sizerating.Classify(value)
		logging.Logger.Debug("classified metric", "input", arg, "value", value, "class", class)
		results = append(results, Result{Input: arg, Value: value, Class: class})
	}

	out := cmd.OutOrStdout()

	if quietMode {
		for _, r := range results {
			fmt.Fprintln(out, r.Class)
		}
		return nil
	}

	if jsonOutput {
		return formatter.JSONSuccess("results", results)
	}

	// Human-readable output
	theme := cliInstance.Config.Theme
	for _, r := range results {
		chip := badge.RenderTerminal(badge.New(r.Value, badge.Options{}, theme))
		fmt.Fprintf(out, "%s %s\n", styles.ValueStyle.Render(cli.FormatValue(r.Value)+" lines →"), chip)
	}

	return nil
}
