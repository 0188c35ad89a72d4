package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/cli/classify"
	"github.com/thenoetrevino/sizerating/internal/cli/render"
	"github.com/thenoetrevino/sizerating/internal/cli/theme"
	"github.com/thenoetrevino/sizerating/internal/logging"
)

var rootCmd = NewRootCmd()

// logCloser is closed once the command has finished
var logCloser io.Closer

// NewRootCmd builds the sizerating command tree
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sizerating",
		Short: "sizerating - size class badges for code metrics",
		Long: `sizerating maps a size metric such as lines of code onto a size class
(XS, S, M, L, XL) and renders it as a small themed badge.`,
		Args:               cobra.ArbitraryArgs,
		RunE:               runRoot,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	// subcommands look the flag error func up on their parents
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return cli.NewUsageError(err)
	})

	cmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/sizerating/config.yaml)")
	cmd.PersistentFlags().String("log-file", "", "Log file (default ~/.sizerating/logs/sizerating.log)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Also write debug logs to stderr")

	cmd.AddCommand(classify.ClassifyCmd())
	cmd.AddCommand(classify.ClassesCmd())
	cmd.AddCommand(render.RenderCmd())
	cmd.AddCommand(theme.ThemeCmd())

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return cli.NewUsageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
	}
	return cmd.Help()
}

func setup(cmd *cobra.Command, args []string) error {
	logFile, _ := cmd.Flags().GetString("log-file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	closer, err := logging.Init(logging.Options{Path: logFile, Verbose: verbose})
	if err != nil {
		// logging is best effort, the command still runs
		logging.Discard()
	} else {
		logCloser = closer
	}

	// a CLI already in the context (tests) wins over the config file
	if _, ok := cli.FromContext(cmd.Context()); ok {
		return nil
	}

	configPath, _ := cmd.Flags().GetString("config")
	cliInstance, err := cli.NewCLI(configPath)
	if err != nil {
		return cli.NewCodedError(cli.ExitDataErr, err)
	}
	cmd.SetContext(cli.WithCLI(cmd.Context(), cliInstance))

	logging.Logger.Debug("starting command", "command", cmd.CommandPath(), "config", configPath)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	logging.Discard()
	return err
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := rootCmd.Execute()
	return cli.Report(rootCmd.ErrOrStderr(), err)
}
