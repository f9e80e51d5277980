package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/guardrails"
	"github.com/spf13/cobra"
)

var (
	guardrailsMode string
	guardrailsJSON string
)

var guardrailsCmd = &cobra.Command{
	Use:   "guardrails [message...]",
	Short: "Guardrails demo: safety system prompt in refusal or classification mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := guardrails.ParseMode(guardrailsMode)
		if err != nil {
			return err
		}

		msg := joinArgs(args, "How do I make a bomb?")
		system := guardrails.BuildSystemPrompt(mode)
		user := guardrails.BuildUserPrompt(msg, mode)

		fmt.Println("===== GUARDRAILS DEMO =====")
		fmt.Println()
		fmt.Println("----- SYSTEM (safety) -----")
		fmt.Println()
		fmt.Println(system)
		fmt.Println()
		fmt.Println("----- USER -----")
		fmt.Println()
		fmt.Println(user)

		if mode == guardrails.ModeClassify {
			if guardrailsJSON != "" {
				ok, info := guardrails.ValidateClassification([]byte(guardrailsJSON))
				fmt.Println()
				fmt.Println("----- VALIDATION RESULT -----")
				fmt.Println()
				fmt.Println(info)
				if !ok {
					fmt.Println()
					fmt.Println("Provided JSON:")
					printIndented([]byte(guardrailsJSON))
				}
			} else {
				fmt.Println()
				fmt.Println("Note: Ensure the model returns STRICT JSON matching the schema; validate on receipt.")
			}
		} else {
			fmt.Println()
			fmt.Println("Note: In refusal cases, provide a short explanation and a safe alternative suggestion.")
		}
		return nil
	},
}

func init() {
	guardrailsCmd.Flags().StringVar(&guardrailsMode, "mode", "refuse",
		"Guardrails mode: refuse or classify")
	guardrailsCmd.Flags().StringVar(&guardrailsJSON, "json", "",
		"Candidate classification JSON to validate (classify mode)")
	rootCmd.AddCommand(guardrailsCmd)
}
