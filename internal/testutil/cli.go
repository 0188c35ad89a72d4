// Package testutil holds helpers shared by the command tests.
package testutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/cli"
	"github.com/thenoetrevino/sizerating/internal/config"
)

// DefaultCLI returns a CLI using the built-in config and no config file
func DefaultCLI() *cli.CLI {
	return &cli.CLI{Config: config.Default()}
}

// ExecuteCommand runs cmd with c injected into its context and returns
// what it wrote to stdout and stderr
func ExecuteCommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("cli instance cannot be nil - use DefaultCLI()")
	}

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	cmd.SetContext(cli.WithCLI(context.Background(), c))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}
