package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/spf13/cobra"
)

var stopSequences []string

var stopsCmd = &cobra.Command{
	Use:   "stops [message...]",
	Short: "Stop sequence demo: stop strings alongside the composed prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "Explain BFS vs. DFS.")
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(msg)
		if err != nil {
			return err
		}

		// Default common stops used in chat templating.
		stops := stopSequences
		if len(stops) == 0 {
			stops = []string{"```", "\n\nUser:", "<END>"}
		}

		fmt.Println("===== STOP SEQUENCES DEMO =====")
		fmt.Println()
		printParts(parts)
		fmt.Println()
		fmt.Println("----- STOP SEQUENCES -----")
		fmt.Println()
		for i, s := range stops {
			fmt.Printf("%d. %q\n", i+1, s)
		}
		fmt.Println()
		fmt.Println("Note: Provide these stops to your LLM client's generation call to halt output when any token appears.")
		return nil
	},
}

func init() {
	stopsCmd.Flags().StringArrayVar(&stopSequences, "stop", nil,
		"Stop sequence token/string. Repeat flag to add multiple.")
	rootCmd.AddCommand(stopsCmd)
}
