package theme

import (
	"github.com/spf13/cobra"
)

// ThemeCmd returns the theme parent command
func ThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and initialize badge theme tokens",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(PresetsCmd())
	cmd.AddCommand(InitCmd())

	return cmd
}
