package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/kayz/promptlab/internal/toolcall"
	"github.com/spf13/cobra"
)

var (
	toolcallJSON     string
	toolcallJSONFile string
)

var toolcallCmd = &cobra.Command{
	Use:   "toolcall [goal...]",
	Short: "Tool-calling demo: tool catalog prompt plus optional call validation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		goal := joinArgs(args, "General task")
		instruction := toolcall.BuildInstruction(goal)
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(instruction)
		if err != nil {
			return err
		}

		fmt.Println("===== TOOL CALLING DEMO =====")
		fmt.Println()
		fmt.Println("----- SYSTEM -----")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("----- USER (instruction) -----")
		fmt.Println()
		fmt.Println(parts.User)

		payload, err := loadCandidateJSON(toolcallJSON, toolcallJSONFile)
		if err != nil {
			return err
		}
		if payload != nil {
			ok, info := toolcall.ValidateCall(payload)
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

// loadCandidateJSON reads an optional JSON payload from a flag value or a
// file. Returns nil when neither was supplied.
func loadCandidateJSON(inline, file string) ([]byte, error) {
	if inline != "" {
		return []byte(inline), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read JSON file: %w", err)
		}
		return data, nil
	}
	return nil, nil
}

// printIndented pretty-prints a JSON payload, or the raw bytes when it does
// not parse.
func printIndented(payload []byte) {
	var v any
	if err := json.Unmarshal(payload, &v); err != nil {
		fmt.Println(string(payload))
		return
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(payload))
		return
	}
	fmt.Println(string(pretty))
}

func init() {
	toolcallCmd.Flags().StringVar(&toolcallJSON, "json", "", "Candidate tool-call JSON to validate")
	toolcallCmd.Flags().StringVar(&toolcallJSONFile, "json-file", "", "Path to tool-call JSON file to validate")
	rootCmd.AddCommand(toolcallCmd)
}
