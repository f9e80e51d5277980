package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/kayz/promptlab/internal/structured"
	"github.com/spf13/cobra"
)

var (
	structuredJSON     string
	structuredJSONFile string
)

var structuredCmd = &cobra.Command{
	Use:   "structured [topic...]",
	Short: "Structured output demo: strict-JSON prompt plus optional validation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		topic := joinArgs(args, "General interview answer review")
		instruction := structured.BuildInstruction(topic)
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(instruction)
		if err != nil {
			return err
		}

		fmt.Println("===== STRUCTURED OUTPUT DEMO =====")
		fmt.Println()
		fmt.Println("----- SYSTEM -----")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("----- USER (instruction) -----")
		fmt.Println()
		fmt.Println(parts.User)

		payload, err := loadCandidateJSON(structuredJSON, structuredJSONFile)
		if err != nil {
			return err
		}
		if payload != nil {
			ok, info := structured.ValidatePayload(payload)
			fmt.Println()
			fmt.Println("----- VALIDATION RESULT -----")
			fmt.Println()
			fmt.Println(info)
			if !ok {
				fmt.Println()
				fmt.Println("Provided JSON:")
				printIndented(payload)
			}
		}
		return nil
	},
}

func init() {
	structuredCmd.Flags().StringVar(&structuredJSON, "json", "", "Raw JSON string to validate")
	structuredCmd.Flags().StringVar(&structuredJSONFile, "json-file", "", "Path to JSON file to validate")
	rootCmd.AddCommand(structuredCmd)
}
