package promptbuild

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kayz/promptlab/internal/tokenizer"
)

func TestParseTurn(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Turn
		ok   bool
	}{
		{name: "user turn", raw: "user: hi", want: Turn{Role: "user", Content: "hi"}, ok: true},
		{name: "assistant turn", raw: "assistant: hello!", want: Turn{Role: "assistant", Content: "hello!"}, ok: true},
		{name: "case insensitive role", raw: "  User :  hi there ", want: Turn{Role: "user", Content: "hi there"}, ok: true},
		{name: "colon in content kept", raw: "user: note: keep this", want: Turn{Role: "user", Content: "note: keep this"}, ok: true},
		{name: "no colon", raw: "bogus line with no colon", ok: false},
		{name: "unknown role", raw: "system: hi", ok: false},
		{name: "empty content", raw: "user:", want: Turn{Role: "user", Content: ""}, ok: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseTurn(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ParseTurn(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseTurn(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeDropsMalformed(t *testing.T) {
	history := Normalize([]string{"bogus line with no colon", "system: hi"})
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %#v", history)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	history := Normalize([]string{"user: hi", "assistant: hello!", "user: summarize BFS"})
	want := []Turn{
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello!"},
		{Role: "user", Content: "summarize BFS"},
	}
	if !reflect.DeepEqual(history, want) {
		t.Fatalf("Normalize = %#v, want %#v", history, want)
	}
}

func TestWindowByMaxTurnsKeepsAllWhenUnderLimit(t *testing.T) {
	history := Normalize([]string{"user: hi", "assistant: hello!", "user: summarize BFS"})
	window := WindowByMaxTurns(history, 6)
	if !reflect.DeepEqual(window, history) {
		t.Fatalf("expected all turns unchanged, got %#v", window)
	}
}

func TestWindowByMaxTurnsKeepsSuffix(t *testing.T) {
	history := Normalize([]string{"user:a", "assistant:b", "user:c", "assistant:d", "user:e"})
	window := WindowByMaxTurns(history, 4)
	if len(window) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(window))
	}
	if window[0].Content != "b" || window[3].Content != "e" {
		t.Fatalf("expected suffix b..e, got %#v", window)
	}
}

func TestWindowByMaxTurnsZeroAndNegative(t *testing.T) {
	history := Normalize([]string{"user: hi"})
	if got := WindowByMaxTurns(history, 0); len(got) != 0 {
		t.Fatalf("n=0 should yield empty window, got %#v", got)
	}
	if got := WindowByMaxTurns(history, -3); len(got) != 0 {
		t.Fatalf("n<0 should yield empty window, got %#v", got)
	}
}

func TestWindowByMaxTurnsMonotonic(t *testing.T) {
	history := Normalize([]string{"user:a", "assistant:b", "user:c", "assistant:d", "user:e"})
	prev := 0
	for n := 0; n <= len(history)+2; n++ {
		got := len(WindowByMaxTurns(history, n))
		if got < prev {
			t.Fatalf("window size decreased from %d to %d at n=%d", prev, got, n)
		}
		prev = got
	}
}

func TestWindowByTokenBudgetZeroBudget(t *testing.T) {
	est := tokenizer.Heuristic()
	history := Normalize([]string{"user: hi", "assistant: hello!"})
	window := WindowByTokenBudget(history, 0, est)
	if len(window) != 0 {
		t.Fatalf("zero budget should accept nothing, got %#v", window)
	}
}

func TestWindowByTokenBudgetOversizedTurnExcluded(t *testing.T) {
	est := tokenizer.Heuristic()
	history := Normalize([]string{"user: " + strings.Repeat("word ", 50)})
	window := WindowByTokenBudget(history, 5, est)
	if len(window) != 0 {
		t.Fatalf("turn larger than budget must be excluded entirely, got %#v", window)
	}
}

func TestWindowByTokenBudgetKeepsRecentSuffix(t *testing.T) {
	est := tokenizer.Heuristic()
	history := Normalize([]string{
		"user: " + strings.Repeat("old ", 30),
		"user: brief question",
		"assistant: brief answer",
	})
	// Each short line renders as "- Role: brief ..." costing 5 heuristic
	// tokens; the first line alone exceeds the budget.
	window := WindowByTokenBudget(history, 12, est)
	if len(window) != 2 {
		t.Fatalf("expected the 2 recent turns, got %#v", window)
	}
	if window[0].Content != "brief question" || window[1].Content != "brief answer" {
		t.Fatalf("expected chronological order of recent turns, got %#v", window)
	}
}

func TestWindowByTokenBudgetStopsAtFirstOverflow(t *testing.T) {
	est := tokenizer.Heuristic()
	history := Normalize([]string{
		"user: tiny",
		"user: " + strings.Repeat("big ", 20),
		"user: tail",
	})
	// Walking back: "tail" fits, the big turn overflows, and the walk must
	// stop there instead of skipping ahead to "tiny".
	window := WindowByTokenBudget(history, 10, est)
	if len(window) != 1 || window[0].Content != "tail" {
		t.Fatalf("expected only the most recent turn, got %#v", window)
	}
}

func TestWindowByTokenBudgetRespectsBudget(t *testing.T) {
	est := tokenizer.Heuristic()
	history := Normalize([]string{
		"user: one two three",
		"assistant: four five six",
		"user: seven eight nine",
		"assistant: ten eleven twelve",
	})
	for budget := 0; budget <= 40; budget += 5 {
		window := WindowByTokenBudget(history, budget, est)
		if got := HistoryTokens(window, est); got > budget {
			t.Fatalf("budget %d exceeded: window costs %d tokens", budget, got)
		}
	}
}

func TestWindowByTokenBudgetIdempotent(t *testing.T) {
	est := tokenizer.Heuristic()
	history := Normalize([]string{
		"user: alpha beta",
		"assistant: gamma delta",
		"user: epsilon zeta",
	})
	once := WindowByTokenBudget(history, 14, est)
	twice := WindowByTokenBudget(once, 14, est)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("windowing an already-windowed history changed it: %#v vs %#v", once, twice)
	}
}

func TestWindowByMaxTurnsIdempotent(t *testing.T) {
	history := Normalize([]string{"user:a", "assistant:b", "user:c"})
	once := WindowByMaxTurns(history, 2)
	twice := WindowByMaxTurns(once, 2)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("windowing an already-windowed history changed it: %#v vs %#v", once, twice)
	}
}

func TestRenderTurnShape(t *testing.T) {
	got := RenderTurn(Turn{Role: "user", Content: "hello there"})
	if got != "- User: hello there" {
		t.Fatalf("RenderTurn = %q", got)
	}
	got = RenderTurn(Turn{Role: "assistant", Content: "hi"})
	if got != "- Assistant: hi" {
		t.Fatalf("RenderTurn = %q", got)
	}
}

func TestHistoryTokensEmptyWindow(t *testing.T) {
	if got := HistoryTokens(nil, tokenizer.Heuristic()); got != 0 {
		t.Fatalf("empty window should cost 0 tokens, got %d", got)
	}
}
