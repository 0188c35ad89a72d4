package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/config"
	"github.com/thenoetrevino/sizerating/internal/logging"
)

// InitCmd returns the theme init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "init",
		Short:         "Write a config file with the given preset",
		Args:          cli.UsageArgs(cobra.NoArgs),
		RunE:          runInit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("preset", "default", "Preset to start from")
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	quietMode, _ := cmd.Flags().GetBool("quiet")
	force, _ := cmd.Flags().GetBool("force")
	presetName, _ := cmd.Flags().GetString("preset")

	formatter := cli.NewOutputFormatter(false, quietMode, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitCodeFor(err), err)
	}

	preset, err := cli.LookupPreset(presetName)
	if err != nil {
		if fmtErr := formatter.Error("PRESET_NOT_FOUND", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitNotFound, err)
	}

	path, err := cliInstance.Path()
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		err := fmt.Errorf("%w: %s", cli.ErrConfigExists, path)
		if fmtErr := formatter.ErrorWithSuggestion("CONFIG_EXISTS", err.Error(), "pass --force to overwrite it"); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitUsage, err)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	cfg := config.Default()
	cfg.Theme = *preset
	if err := cfg.SaveFile(path); err != nil {
		if fmtErr := formatter.Error("WRITE_ERROR", err.Error()); fmtErr != nil {
			logging.Logger.Error("formatting error message", "error", fmtErr)
		}
		return cli.NewExitError(cli.ExitError, fmt.Errorf("failed to save config: %w", err))
	}
	logging.Logger.Info("wrote config", "path", path, "preset", presetName)

	cliInstance.Config = cfg

	if quietMode {
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s preset to %s\n", presetName, path)
	return nil
}
