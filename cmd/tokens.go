package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/kayz/promptlab/internal/tokenizer"
	"github.com/spf13/cobra"
)

var tokensModel string

var tokensCmd = &cobra.Command{
	Use:   "tokens [message...]",
	Short: "Token count demo: measure system, user, and total tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "Explain quicksort and its complexity")
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(msg)
		if err != nil {
			return err
		}

		model := tokensModel
		if model == "" {
			model = cfg.Tokenizer.Model
		}
		est := tokenizer.New(model, cfg.Tokenizer.FallbackEncoding)

		sysTokens := est.Count(parts.System)
		usrTokens := est.Count(parts.User)

		fmt.Println("===== TOKEN COUNT DEMO =====")
		fmt.Println()
		fmt.Println("Tokenizer:", est.Strategy())
		fmt.Println()
		fmt.Println("----- SYSTEM (tokens) -----")
		fmt.Println()
		fmt.Println(sysTokens)
		fmt.Println()
		fmt.Println("----- USER (tokens) -----")
		fmt.Println()
		fmt.Println(usrTokens)
		fmt.Println()
		fmt.Println("----- TOTAL (tokens) -----")
		fmt.Println()
		fmt.Println(sysTokens + usrTokens)
		fmt.Println()
		fmt.Println("Note: Use these counts to budget context or log usage after each AI call.")
		return nil
	},
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensModel, "model", "m", "",
		"Model name hint for tokenizer (e.g., gpt-3.5-turbo)")
	rootCmd.AddCommand(tokensCmd)
}
