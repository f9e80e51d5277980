package promptbuild

import "strings"

const noHistoryPlaceholder = "(none)"

// ComposeInstruction combines a windowed history and the current user
// message into the final user-facing instruction block.
func ComposeInstruction(window []Turn, currentMessage string) string {
	lines := []string{
		"You are a helpful assistant. Use the recent conversation history for context.",
		"If the history does not contain the answer, ask clarifying questions or say you don't know.",
		"\nRECENT HISTORY:",
	}
	if len(window) == 0 {
		lines = append(lines, noHistoryPlaceholder)
	} else {
		for _, t := range window {
			lines = append(lines, RenderTurn(t))
		}
	}
	lines = append(lines, "\nCURRENT REQUEST:", currentMessage)
	return strings.Join(lines, "\n")
}
