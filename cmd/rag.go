package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/kayz/promptlab/internal/retrieval"
	"github.com/spf13/cobra"
)

var ragTopK int

var ragCmd = &cobra.Command{
	Use:   "rag [question...]",
	Short: "RAG stub demo: retrieve context passages and build a grounded prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		question := joinArgs(args, "How does BFS differ from DFS?")
		hits := retrieval.Retrieve(question, ragTopK)
		instruction := retrieval.BuildInstruction(question, hits)

		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(instruction)
		if err != nil {
			return err
		}

		fmt.Println("===== RAG STUB DEMO =====")
		fmt.Println()
		fmt.Println("----- SYSTEM -----")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("----- USER (instruction with CONTEXT) -----")
		fmt.Println()
		fmt.Println(parts.User)
		fmt.Println()
		fmt.Println("Top-K retrieved (id, score):")
		for _, hit := range hits {
			fmt.Printf("- %s: %.3f\n", hit.ID, hit.Score)
		}
		return nil
	},
}

func init() {
	ragCmd.Flags().IntVar(&ragTopK, "top-k", 3, "Top-K retrieved passages")
	rootCmd.AddCommand(ragCmd)
}
