package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose [message...]",
	Short: "Compose a system + user prompt pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "Explain binary search with time and space complexity.")
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(msg)
		if err != nil {
			return err
		}

		fmt.Println("===== SYSTEM =====")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("===== USER =====")
		fmt.Println()
		fmt.Println(parts.User)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(composeCmd)
}
