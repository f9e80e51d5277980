package cmd

import (
	"fmt"
	"strings"

	"github.com/kayz/promptlab/internal/eval"
	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/spf13/cobra"
)

var (
	evalDryRun  bool
	evalFakeRun bool
	evalExec    string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Eval harness demo: run the built-in prompt test cases",
	Long: `Runs the built-in test cases against a generator.

  --dry-run   print the cases and their composed prompts, no generation
  --fake-run  use the built-in canned generator
  --exec      run a shell command per case; it receives PROMPTLAB_SYSTEM and
              PROMPTLAB_USER in its environment and must print the model
              output on stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		builder := promptbuild.NewBuilder(cfg.Prompt)

		if evalDryRun {
			fmt.Println("===== EVAL HARNESS (DRY RUN) =====")
			fmt.Println()
			for _, tc := range eval.Cases {
				parts, err := builder.Build(tc.UserInput)
				if err != nil {
					return err
				}
				fmt.Printf("- %s\n", tc.Name)
				fmt.Printf("  Check: %s\n", describeCheck(tc.Check))
				fmt.Println("  SYSTEM:")
				printIndentedText(parts.System)
				fmt.Println("  USER:")
				printIndentedText(parts.User)
				fmt.Println()
			}
			return nil
		}

		gen := eval.FakeGenerate
		if evalExec != "" {
			gen = eval.CommandGenerator(evalExec)
		}

		results, err := eval.Run(eval.Cases, builder, gen)
		if err != nil {
			return err
		}

		fmt.Println("===== EVAL HARNESS (RUN) =====")
		fmt.Println()
		passed := 0
		for _, r := range results {
			status := "FAIL"
			if r.Passed {
				status = "PASS"
				passed++
			}
			fmt.Printf("[%s] %s -> %s\n", status, r.Name, r.Info)
		}
		fmt.Println()
		fmt.Printf("Passed %d/%d\n", passed, len(results))
		return nil
	},
}

func describeCheck(c eval.Check) string {
	switch c.Type {
	case "contains":
		return fmt.Sprintf("contains %q", c.Needle)
	case "regex":
		return fmt.Sprintf("regex /%s/%s", c.Pattern, c.Flags)
	case "json_schema":
		return "json_schema"
	default:
		return c.Type
	}
}

func printIndentedText(text string) {
	fmt.Println("  " + strings.ReplaceAll(text, "\n", "\n  "))
}

func init() {
	evalCmd.Flags().BoolVar(&evalDryRun, "dry-run", false, "Only print plan and prompts")
	evalCmd.Flags().BoolVar(&evalFakeRun, "fake-run", false, "Run with the built-in fake generator")
	evalCmd.Flags().StringVar(&evalExec, "exec", "", "Shell command acting as the generator")
	evalCmd.MarkFlagsMutuallyExclusive("dry-run", "fake-run", "exec")
	rootCmd.AddCommand(evalCmd)
}
