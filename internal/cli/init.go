package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/seaward/remora/internal/config"
)

const configTemplate = `# Remora configuration.
# The ANTHROPIC_API_KEY environment variable must be set separately;
# it is never read from this file.
agent:
  model: %s
  max_tokens: %d
  # 0 leaves tool chains unbounded.
  max_tool_turns: %d
log:
  level: %s
  format: %s
`

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Create a config file populated with the default settings.

The file is written to ~/.remora/config.yaml unless --config points
somewhere else.`,
		Example: `  remora init
  remora init --config ./remora.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}

			defaults := config.DefaultConfig()
			content := fmt.Sprintf(configTemplate,
				defaults.Agent.Model,
				defaults.Agent.MaxTokens,
				defaults.Agent.MaxToolTurns,
				defaults.Log.Level,
				defaults.Log.Format,
			)

			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			color.New(color.FgGreen).Printf("Wrote %s\n", path)
			fmt.Println("Set ANTHROPIC_API_KEY in your environment, then run: remora chat")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
