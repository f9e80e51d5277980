package promptbuild

import (
	"strings"
	"testing"
)

func TestComposeInstructionEmptyHistory(t *testing.T) {
	out := ComposeInstruction(nil, "Explain recursion")

	if !strings.Contains(out, "RECENT HISTORY:") {
		t.Fatalf("expected history heading, got: %s", out)
	}
	if !strings.Contains(out, "(none)") {
		t.Fatalf("expected no-history placeholder, got: %s", out)
	}
	if !strings.Contains(out, "CURRENT REQUEST:\nExplain recursion") {
		t.Fatalf("expected current request heading and message, got: %s", out)
	}
	if strings.Index(out, "(none)") > strings.Index(out, "CURRENT REQUEST:") {
		t.Fatalf("placeholder must come before the current request: %s", out)
	}
}

func TestComposeInstructionWithHistory(t *testing.T) {
	window := Normalize([]string{"user: hi", "assistant: hello!"})
	out := ComposeInstruction(window, "Compare BFS and DFS")

	if strings.Contains(out, "(none)") {
		t.Fatalf("placeholder must not appear with non-empty history: %s", out)
	}
	first := strings.Index(out, "- User: hi")
	second := strings.Index(out, "- Assistant: hello!")
	if first == -1 || second == -1 || second < first {
		t.Fatalf("expected rendered turns in order, got: %s", out)
	}
	if !strings.Contains(out, "CURRENT REQUEST:\nCompare BFS and DFS") {
		t.Fatalf("expected current request section, got: %s", out)
	}
}
