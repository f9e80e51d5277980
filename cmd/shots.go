package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/spf13/cobra"
)

// One example pair (User -> Assistant) for the one-shot demo.
const (
	oneShotExampleUser      = "Write a Python function to check if a string is a palindrome."
	oneShotExampleAssistant = "Here's a clean solution with O(n) time and O(1) extra space:\n\n" +
		"```python\n" +
		"def is_palindrome(s: str) -> bool:\n" +
		"    i, j = 0, len(s) - 1\n" +
		"    while i < j:\n" +
		"        if s[i] != s[j]:\n" +
		"            return False\n" +
		"        i += 1\n" +
		"        j -= 1\n" +
		"    return True\n" +
		"```\n" +
		"- Time: O(n), Space: O(1) (ignoring input)\n" +
		"- Idea: Two pointers moving toward the center compare mirrored characters."
)

// Example pairs (User -> Assistant) for the multi-shot demo.
var multiShotExamples = [][2]string{
	{
		"Tell me about a time you failed.",
		"Provide STAR-structured feedback: clarify Situation/Task, emphasize learning, " +
			"show corrective Action, and end with Result/impact. Keep it concise and reflective.",
	},
	{
		"Describe a conflict you had with a teammate.",
		"Coach on empathy, clear communication, specific Actions (listening, aligning goals), " +
			"and measurable Result. Suggest phrasing that avoids blame.",
	},
	{
		"Why should we hire you?",
		"Guide to align strengths with role requirements, include 1-2 quick proof points, " +
			"and end with how they'll add value in the first 90 days.",
	},
}

var zeroShotCmd = &cobra.Command{
	Use:   "zeroshot [message...]",
	Short: "Zero-shot prompt: system and user only, no examples",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "Describe the difference between DFS and BFS.")
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(msg)
		if err != nil {
			return err
		}

		fmt.Println("===== ZERO-SHOT PROMPT =====")
		fmt.Println()
		fmt.Println("(No examples are included — only system and user messages)")
		fmt.Println()
		printParts(parts)
		return nil
	},
}

var oneShotCmd = &cobra.Command{
	Use:   "oneshot [message...]",
	Short: "One-shot prompt: a single example pair before the user query",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "Explain memoization with a simple example.")
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(msg)
		if err != nil {
			return err
		}

		fmt.Println("===== ONE-SHOT PROMPT =====")
		fmt.Println()
		fmt.Println("----- SYSTEM -----")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("----- EXAMPLE -----")
		fmt.Println()
		fmt.Printf("User: %s\n\n", oneShotExampleUser)
		fmt.Printf("Assistant: %s\n\n", oneShotExampleAssistant)
		fmt.Println("----- USER -----")
		fmt.Println()
		fmt.Println(parts.User)
		return nil
	},
}

var multiShotCmd = &cobra.Command{
	Use:   "multishot [message...]",
	Short: "Multi-shot prompt: several example pairs before the user query",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "What is your greatest weakness?")
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(msg)
		if err != nil {
			return err
		}

		fmt.Println("===== MULTI-SHOT PROMPT =====")
		fmt.Println()
		fmt.Println("----- SYSTEM -----")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("----- EXAMPLES -----")
		fmt.Println()
		for i, ex := range multiShotExamples {
			fmt.Printf("Example %d - User: %s\n\n", i+1, ex[0])
			fmt.Printf("Example %d - Assistant: %s\n\n", i+1, ex[1])
		}
		fmt.Println("----- USER -----")
		fmt.Println()
		fmt.Println(parts.User)
		return nil
	},
}

// printParts prints the standard SYSTEM / USER sections.
func printParts(parts promptbuild.PromptParts) {
	fmt.Println("----- SYSTEM -----")
	fmt.Println()
	fmt.Println(parts.System)
	fmt.Println()
	fmt.Println("----- USER -----")
	fmt.Println()
	fmt.Println(parts.User)
}

func init() {
	rootCmd.AddCommand(zeroShotCmd)
	rootCmd.AddCommand(oneShotCmd)
	rootCmd.AddCommand(multiShotCmd)
}
