package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/kayz/promptlab/internal/config"
	"github.com/kayz/promptlab/internal/logger"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "promptlab",
	Short: "promptlab prompt-engineering demos",
	Long: `promptlab is a collection of prompt-engineering demos.

Each subcommand composes a system/user prompt pair and prints it; none of
them call an actual model. Start with:

  promptlab compose "Write a BFS in Python"
  promptlab memory --turn "user: hi" --turn "assistant: hello!" "Compare BFS and DFS"
  promptlab tokens "Explain quicksort" --model gpt-3.5-turbo`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Parse and set log level
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info",
		"Log level: trace, debug, info, warn, error, fatal, panic")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"Config file path (default: .promptlab.yaml next to the executable)")
}

// loadConfig loads the effective configuration, honoring --config.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFromPath(configFile)
	}
	return config.Load()
}

// joinArgs joins positional args into the free-text message, falling back to
// a default when none were given.
func joinArgs(args []string, fallback string) string {
	msg := strings.TrimSpace(strings.Join(args, " "))
	if msg == "" {
		return fallback
	}
	return msg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
