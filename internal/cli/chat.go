package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seaward/remora/internal/agent"
	"github.com/seaward/remora/internal/config"
	"github.com/seaward/remora/internal/tools"
)

func newChatCmd() *cobra.Command {
	var (
		model        string
		maxTokens    int
		maxToolTurns int
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session",
		Long: `Start an interactive chat session in which the model may use remora's
file tools. Ctrl+D ends the session cleanly; Ctrl+C exits with a goodbye.`,
		Example: `  remora chat
  remora chat --model claude-sonnet-4-20250514
  remora chat --max-tool-turns 25`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Build configuration with CLI overrides.
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("model") {
				cfg.Agent.Model = model
			}
			if cmd.Flags().Changed("max-tokens") {
				cfg.Agent.MaxTokens = maxTokens
			}
			if cmd.Flags().Changed("max-tool-turns") {
				cfg.Agent.MaxToolTurns = maxToolTurns
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			// 2. Create logger.
			logger, err := newLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer logger.Sync()

			// 3. Register the built-in tools.
			registry, err := tools.NewRegistry(tools.Defaults()...)
			if err != nil {
				return fmt.Errorf("registering tools: %w", err)
			}

			// 4. Wire transport, input source, and agent.
			transport := agent.NewAnthropicTransport(cfg.APIKey, cfg.Agent.Model, cfg.Agent.MaxTokens)

			scanner := bufio.NewScanner(os.Stdin)
			getUserMessage := func() (string, bool) {
				if !scanner.Scan() {
					return "", false
				}
				return scanner.Text(), true
			}

			ag, err := agent.New(agent.Options{
				Transport:      transport,
				Registry:       registry,
				GetUserMessage: getUserMessage,
				Out:            os.Stdout,
				Logger:         logger,
				MaxToolTurns:   cfg.Agent.MaxToolTurns,
			})
			if err != nil {
				return err
			}

			// 5. Convert interrupts into a graceful exit. The context
			// cancellation aborts any in-flight model call.
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			go func() {
				sig := <-sigCh
				logger.Info("received shutdown signal", zap.String("signal", sig.String()))
				fmt.Println("\nGoodbye.")
				cancel()
				os.Exit(0)
			}()

			// Print startup banner.
			banner := color.New(color.FgCyan, color.Bold)
			banner.Println("Remora")
			fmt.Printf("   Model: %s\n", cfg.Agent.Model)
			fmt.Printf("   Tools: %s\n", strings.Join(toolNames(registry), ", "))
			fmt.Println()

			return ag.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "Model to chat with")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "Maximum tokens per model response")
	cmd.Flags().IntVar(&maxToolTurns, "max-tool-turns", 0, "Abort after this many chained model turns (0 = unlimited)")

	return cmd
}

// newLogger builds a zap logger honouring the configured level and format.
// Logs go to stderr so they do not interleave with the chat transcript on
// stdout.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zcfg zap.Config
	if cfg.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}

	return zcfg.Build()
}

// toolNames returns the registered tool names in registration order.
func toolNames(registry *tools.Registry) []string {
	var names []string
	for _, t := range registry.All() {
		names = append(names, t.Describe().Name)
	}
	return names
}
