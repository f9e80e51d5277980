package cmd

import (
	"fmt"

	"github.com/kayz/promptlab/internal/logger"
	"github.com/kayz/promptlab/internal/persist"
	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/spf13/cobra"
)

var (
	logSession string
	logTurns   []string
)

var logCmd = &cobra.Command{
	Use:   "log --session <name> --turn \"role: content\"",
	Short: "Append turns to a stored conversation session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if logSession == "" {
			return fmt.Errorf("--session is required")
		}
		if len(logTurns) == 0 {
			return fmt.Errorf("at least one --turn is required")
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		store, err := persist.NewStore(cfg.History.SQLitePath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer store.Close()

		sess, err := store.GetOrCreateSession(logSession)
		if err != nil {
			return fmt.Errorf("load session %q: %w", logSession, err)
		}

		appended := 0
		for _, raw := range logTurns {
			turn, ok := promptbuild.ParseTurn(raw)
			if !ok {
				logger.Warn("skipping malformed turn: %q", raw)
				continue
			}
			if err := store.AppendTurn(sess.ID, turn.Role, turn.Content); err != nil {
				return fmt.Errorf("append turn: %w", err)
			}
			appended++
		}

		fmt.Printf("Appended %d turn(s) to session %q\n", appended, logSession)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logSession, "session", "", "Session name")
	logCmd.Flags().StringArrayVar(&logTurns, "turn", nil,
		`Turn as "user: text" or "assistant: text". Repeatable.`)
	rootCmd.AddCommand(logCmd)
}
