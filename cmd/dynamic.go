package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/dynamic"
	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/spf13/cobra"
)

var (
	dynamicLang   string
	dynamicDetail string
)

var dynamicCmd = &cobra.Command{
	Use:   "dynamic [message...]",
	Short: "Dynamic prompt demo: craft the user message from detected intent",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if !dynamic.ValidDetail(dynamicDetail) {
			return fmt.Errorf("unknown detail level: %q (want basic, normal, or deep)", dynamicDetail)
		}

		raw := joinArgs(args, "Write me code for a binary search tree in C++.")

		language := ""
		if dynamicLang != "" {
			language = dynamic.NormalizeLanguage(dynamicLang)
		} else {
			language = dynamic.DetectLanguage(raw)
		}
		if language == "" {
			language = "Python"
		}

		params := dynamic.Params{
			Language: language,
			Topic:    dynamic.GuessTopic(raw),
			Detail:   dynamicDetail,
		}
		userMsg := dynamic.BuildUserMessage(params)

		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(userMsg)
		if err != nil {
			return err
		}

		fmt.Println("===== DYNAMIC PROMPT =====")
		fmt.Println()
		fmt.Println("----- SYSTEM -----")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("----- USER (dynamic) -----")
		fmt.Println()
		fmt.Println(parts.User)
		fmt.Println()
		fmt.Println("----- ORIGINAL INPUT -----")
		fmt.Println()
		fmt.Println(raw)
		return nil
	},
}

func init() {
	dynamicCmd.Flags().StringVarP(&dynamicLang, "lang", "l", "",
		"Force language (e.g., python, cpp, java)")
	dynamicCmd.Flags().StringVarP(&dynamicDetail, "detail", "d", "normal",
		"Detail level: basic, normal, deep")
	rootCmd.AddCommand(dynamicCmd)
}
