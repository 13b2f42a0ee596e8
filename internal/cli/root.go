package cli

import (
	"github.com/spf13/cobra"
)

var (
	// configPath is set by the root command's --config flag. Empty means
	// the default location (~/.remora/config.yaml).
	configPath string
)

// NewRootCmd creates the top-level remora CLI command with all subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remora",
		Short: "A minimal tool-using coding agent for the terminal",
		Long: `Remora chats with a hosted model and lets it read, list, and edit
files in the working directory through a small set of tools.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.remora/config.yaml)")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table|json|yaml")

	cmd.AddCommand(
		newChatCmd(),
		newToolsCmd(),
		newInitCmd(),
	)

	return cmd
}
