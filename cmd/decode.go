package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/spf13/cobra"
)

var (
	decodeTemperature float64
	decodeTopK        int
	decodeTopP        float64
)

var decodeCmd = &cobra.Command{
	Use:   "decode [message...]",
	Short: "Decoding parameters demo: temperature, top-k, top-p alongside the prompt",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "Explain beam search vs. sampling.")
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(msg)
		if err != nil {
			return err
		}

		fmt.Println("===== TEMPERATURE / DECODING DEMO =====")
		fmt.Println()
		printParts(parts)
		fmt.Println()
		fmt.Println("----- DECODING PARAMETERS -----")
		fmt.Println()
		fmt.Printf("temperature: %g\n", decodeTemperature)
		if cmd.Flags().Changed("top-k") {
			fmt.Printf("top_k: %d\n", decodeTopK)
		} else {
			fmt.Println("top_k: (unset)")
		}
		if cmd.Flags().Changed("top-p") {
			fmt.Printf("top_p: %g\n", decodeTopP)
		} else {
			fmt.Println("top_p: (unset)")
		}
		fmt.Println()
		fmt.Println("Note: Pass these parameters to your actual LLM client when generating.")
		return nil
	},
}

func init() {
	decodeCmd.Flags().Float64VarP(&decodeTemperature, "temperature", "t", 0.7,
		"Sampling temperature (0.0-2.0)")
	decodeCmd.Flags().IntVar(&decodeTopK, "top-k", 0, "Top-K sampling cutoff (e.g., 40)")
	decodeCmd.Flags().Float64Var(&decodeTopP, "top-p", 0, "Nucleus sampling probability (e.g., 0.9)")
	rootCmd.AddCommand(decodeCmd)
}
