package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/badge"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/cli/styles"
	"github.com/thenoetrevino/sizerating/internal/logging"
	"github.com/thenoetrevino/sizerating/internal/sizerating"
)

// RenderCmd returns the render command
func RenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render VALUE",
		Short: "Render a size rating badge",
		Long: `Render the size rating badge for a metric as a terminal chip, an HTML
element, an SVG document or a CSS rule.

Values that cannot be classified (negative or not a number) render as a
blank badge.`,
		Args:          cli.UsageArgs(cobra.ExactArgs(1)),
		RunE:          runRender,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("format", "f", "", "Output format: term, html, svg or css (default from config)")
	cmd.Flags().Bool("muted", false, "Use the neutral gray background")
	cmd.Flags().Bool("small", false, "Use the small variant")
	cmd.Flags().String("class", "", "Extra class names for the container")
	cmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	formatter := cli.NewOutputFormatter(false, false, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitCodeFor(err), err)
	}
	cfg := cliInstance.Config

	if err := cfg.Theme.Validate(); err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_THEME", err.Error(), "fix the theme section of your config or run 'sizerating theme init --force'"); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitDataErr, err)
	}

	formatName, _ := cmd.Flags().GetString("format")
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	format, err := cli.ParseFormat(formatName)
	if err != nil {
		if fmtErr := formatter.Error("INVALID_FORMAT", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitUsage, err)
	}

	value, err := cli.ParseValue(args[0])
	if err != nil {
		if fmtErr := formatter.Error("INVALID_VALUE", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitValidation, err)
	}
	if err := sizerating.Validate(value); err != nil {
		// unclassifiable values still render, just without a label
		logging.Logger.Warn("rendering blank badge", "value", value, "error", err)
		fmt.Fprintln(cmd.ErrOrStderr(), styles.WarningStyle.Render("Warning: "+err.Error()+"; rendering a blank badge"))
	}

	opts := badge.Options{Muted: cfg.Output.Muted, Small: cfg.Output.Small}
	if cmd.Flags().Changed("muted") {
		opts.Muted, _ = cmd.Flags().GetBool("muted")
	}
	if cmd.Flags().Changed("small") {
		opts.Small, _ = cmd.Flags().GetBool("small")
	}
	opts.ClassName, _ = cmd.Flags().GetString("class")

	b := badge.New(value, opts, cfg.Theme)
	logging.Logger.Debug("rendering badge", "value", value, "class", b.Label, "format", format, "small", opts.Small, "muted", opts.Muted)

	var buf bytes.Buffer
	if err := Write(&buf, format, b); err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		if fmtErr := formatter.Error("WRITE_ERROR", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitError, fmt.Errorf("failed to write badge: %w", err))
	}
	logging.Logger.Info("wrote badge", "path", outputPath, "format", format)
	return nil
}

// Write renders b in the given format, always ending with a newline
func Write(w io.Writer, format cli.Format, b badge.Badge) error {
	switch format {
	case cli.FormatTerm:
		_, err := fmt.Fprintln(w, badge.RenderTerminal(b))
		return err
	case cli.FormatHTML:
		if err := badge.RenderHTML(w, b); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case cli.FormatSVG:
		return badge.RenderSVG(w, b)
	case cli.FormatCSS:
		_, err := io.WriteString(w, b.Style.Rule(Selector(b)))
		return err
	default:
		return fmt.Errorf("%w: %q", cli.ErrUnknownFormat, format)
	}
}

// Selector turns the badge's class list into a compound CSS selector
func Selector(b badge.Badge) string {
	return "." + strings.Join(strings.Fields(b.Classes()), ".")
}
