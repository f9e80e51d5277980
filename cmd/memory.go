package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/persist"
	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/kayz/promptlab/internal/tokenizer"
	"github.com/spf13/cobra"
)

var (
	memoryTurns       []string
	memoryMaxTurns    int
	memoryTokenBudget int
	memoryModel       string
	memorySession     string
)

var memoryCmd = &cobra.Command{
	Use:   "memory [message...]",
	Short: "Conversation memory demo: window history by turn count or token budget",
	Long: `Builds a prompt that stitches recent conversation history ahead of the
current request. History comes from repeated --turn flags, from a stored
session (--session), or both; stored turns come first.

The window keeps the last N turns (--max-turns, default from config), unless
a positive --token-budget is given, which takes precedence and keeps the
largest suffix of turns whose rendered lines fit the budget.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		msg := joinArgs(args, "What's the key difference between BFS and DFS?")

		var raw []string
		if memorySession != "" {
			stored, err := loadSessionTurns(cfg.History.SQLitePath, memorySession)
			if err != nil {
				return err
			}
			raw = append(raw, stored...)
		}
		raw = append(raw, memoryTurns...)
		history := promptbuild.Normalize(raw)

		maxTurns := memoryMaxTurns
		if !cmd.Flags().Changed("max-turns") && cfg.History.DefaultMaxTurns > 0 {
			maxTurns = cfg.History.DefaultMaxTurns
		}

		model := memoryModel
		if model == "" {
			model = cfg.Tokenizer.Model
		}
		est := tokenizer.New(model, cfg.Tokenizer.FallbackEncoding)

		var window []promptbuild.Turn
		var method string
		useBudget := memoryTokenBudget > 0
		if useBudget {
			window = promptbuild.WindowByTokenBudget(history, memoryTokenBudget, est)
			method = fmt.Sprintf("token_budget=%d", memoryTokenBudget)
		} else {
			window = promptbuild.WindowByMaxTurns(history, maxTurns)
			method = fmt.Sprintf("max_turns=%d", maxTurns)
		}

		instruction := promptbuild.ComposeInstruction(window, msg)
		parts, err := promptbuild.NewBuilder(cfg.Prompt).Build(instruction)
		if err != nil {
			return err
		}

		fmt.Println("===== CONVERSATION MEMORY DEMO =====")
		fmt.Println()
		fmt.Println("Window method:", method)
		fmt.Println("Included turns:", len(window))
		fmt.Println()
		fmt.Println("----- SYSTEM -----")
		fmt.Println()
		fmt.Println(parts.System)
		fmt.Println()
		fmt.Println("----- USER (instruction with history) -----")
		fmt.Println()
		fmt.Println(parts.User)

		if useBudget {
			fmt.Println()
			fmt.Println("History tokens:", promptbuild.HistoryTokens(window, est))
			hint := model
			if hint == "" {
				hint = "(none)"
			}
			fmt.Println("Model hint:", hint)
			fmt.Println("Tokenizer:", est.Strategy())
		}
		return nil
	},
}

// loadSessionTurns reads a stored session's turns as raw "role: content"
// lines, so they flow through the same normalizer as --turn flags.
func loadSessionTurns(dbPath, session string) ([]string, error) {
	store, err := persist.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	sess, err := store.GetOrCreateSession(session)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", session, err)
	}
	turns, err := store.Turns(sess.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("load session turns: %w", err)
	}

	raw := make([]string, 0, len(turns))
	for _, t := range turns {
		raw = append(raw, t.Role+": "+t.Content)
	}
	return raw, nil
}

func init() {
	memoryCmd.Flags().StringArrayVar(&memoryTurns, "turn", nil,
		`History turn as "user: text" or "assistant: text". Repeatable.`)
	memoryCmd.Flags().IntVar(&memoryMaxTurns, "max-turns", 6,
		"Max history turns to include (if no token budget)")
	memoryCmd.Flags().IntVar(&memoryTokenBudget, "token-budget", 0,
		"Approx token budget for the history block only (overrides --max-turns)")
	memoryCmd.Flags().StringVar(&memoryModel, "model", "",
		"Tokenizer model hint (e.g., gpt-3.5-turbo)")
	memoryCmd.Flags().StringVar(&memorySession, "session", "",
		"Stored session name to load history from")
	rootCmd.AddCommand(memoryCmd)
}
