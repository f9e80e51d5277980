package promptbuild

import (
	"strings"

	"github.com/kayz/promptlab/internal/tokenizer"
)

// ParseTurn parses a raw "role: content" string. The role before the first
// colon is trimmed and lowercased; only "user" and "assistant" are accepted.
// Returns false for lines with no colon or an unrecognized role.
func ParseTurn(raw string) (Turn, bool) {
	idx := strings.Index(raw, ":")
	if idx < 0 {
		return Turn{}, false
	}
	role := strings.ToLower(strings.TrimSpace(raw[:idx]))
	if role != "user" && role != "assistant" {
		return Turn{}, false
	}
	return Turn{Role: role, Content: strings.TrimSpace(raw[idx+1:])}, true
}

// Normalize parses raw turn strings into a history, silently dropping
// malformed entries. Output order preserves input order.
func Normalize(raw []string) []Turn {
	history := make([]Turn, 0, len(raw))
	for _, line := range raw {
		if turn, ok := ParseTurn(line); ok {
			history = append(history, turn)
		}
	}
	return history
}

// RenderTurn renders one turn as a single history line. The exact shape is
// part of the windowing contract: token budgets are charged against this
// text, so changing it changes which turns fit.
func RenderTurn(t Turn) string {
	return "- " + roleLabel(t.Role) + ": " + t.Content
}

func roleLabel(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	if r == "" {
		return "Unknown"
	}
	return strings.ToUpper(r[:1]) + r[1:]
}

// WindowByMaxTurns returns the last maxTurns turns, order preserved.
// A non-positive limit yields an empty window.
func WindowByMaxTurns(history []Turn, maxTurns int) []Turn {
	if maxTurns <= 0 {
		return nil
	}
	if maxTurns >= len(history) {
		return history
	}
	return history[len(history)-maxTurns:]
}

// WindowByTokenBudget walks the history from most recent to oldest,
// accumulating the rendered-line token cost of each turn, and stops at the
// first turn that would push the total over the budget. The result is
// returned in chronological order. A single turn costing more than the
// budget is excluded entirely; the window may legitimately be empty.
func WindowByTokenBudget(history []Turn, budget int, est *tokenizer.Estimator) []Turn {
	var acc []Turn
	total := 0
	for i := len(history) - 1; i >= 0; i-- {
		cost := est.Count(RenderTurn(history[i]) + "\n")
		if total+cost > budget {
			break
		}
		acc = append(acc, history[i])
		total += cost
	}
	for i, j := 0, len(acc)-1; i < j; i, j = i+1, j-1 {
		acc[i], acc[j] = acc[j], acc[i]
	}
	return acc
}

// HistoryTokens measures the rendered history block of a window, using the
// same rendering the budget walker charges against.
func HistoryTokens(window []Turn, est *tokenizer.Estimator) int {
	if len(window) == 0 {
		return 0
	}
	lines := make([]string, 0, len(window))
	for _, t := range window {
		lines = append(lines, RenderTurn(t))
	}
	return est.Count(strings.Join(lines, "\n") + "\n")
}
