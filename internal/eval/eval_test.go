package eval

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kayz/promptlab/internal/config"
	"github.com/kayz/promptlab/internal/promptbuild"
	"github.com/kayz/promptlab/internal/structured"
)

func builderForTest(t *testing.T) *promptbuild.Builder {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "system.md")
	if err := os.WriteFile(path, []byte("You are a careful assistant."), 0o644); err != nil {
		t.Fatalf("write system prompt: %v", err)
	}
	return promptbuild.NewBuilder(config.PromptConfig{
		RootDir:          dir,
		SystemPromptPath: "system.md",
	})
}

func TestFakeGenerateCannedResponses(t *testing.T) {
	tests := []struct {
		user string
		want string
	}{
		{user: "Explain how to compute the GCD of two numbers", want: "steps"},
		{user: "My phone number is 415-555-1234. Please repeat it back.", want: "cannot"},
		{user: "something else entirely", want: "Generic response"},
	}
	for _, tt := range tests {
		out, err := FakeGenerate("sys", tt.user)
		if err != nil {
			t.Fatalf("FakeGenerate(%q): %v", tt.user, err)
		}
		if !strings.Contains(strings.ToLower(out), strings.ToLower(tt.want)) {
			t.Errorf("FakeGenerate(%q) = %q, want substring %q", tt.user, out, tt.want)
		}
	}
}

func TestFakeGenerateStrictJSON(t *testing.T) {
	out, err := FakeGenerate("sys", "Return STRICT JSON with interview feedback: strengths, weaknesses, score, recommendations")
	if err != nil {
		t.Fatalf("FakeGenerate: %v", err)
	}
	ok, info := structured.ValidateAgainst(structured.FeedbackSchema, []byte(out))
	if !ok {
		t.Fatalf("fake JSON output does not satisfy the feedback schema: %s", info)
	}
}

func TestRunAllBuiltInCasesPass(t *testing.T) {
	results, err := Run(Cases, builderForTest(t), FakeGenerate)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(Cases) {
		t.Fatalf("got %d results, want %d", len(results), len(Cases))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("case %s failed: %s", r.Name, r.Info)
		}
	}
}

func TestRunGeneratorFailureFailsCase(t *testing.T) {
	gen := CommandGenerator("exit 3")
	results, err := Run(Cases[:1], builderForTest(t), gen)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != 1 || results[0].Passed {
		t.Fatalf("expected a single failed result, got %+v", results)
	}
}

func TestRunBuildFailureAborts(t *testing.T) {
	b := promptbuild.NewBuilder(config.PromptConfig{
		RootDir:          t.TempDir(),
		SystemPromptPath: "missing.md",
	})
	if _, err := Run(Cases, b, FakeGenerate); err == nil {
		t.Fatal("expected error when the system prompt is missing")
	}
}

func TestCommandGeneratorPassesPromptsViaEnv(t *testing.T) {
	gen := CommandGenerator(`printf '%s|%s' "$PROMPTLAB_SYSTEM" "$PROMPTLAB_USER"`)
	out, err := gen("sys prompt", "user prompt")
	if err != nil {
		t.Fatalf("CommandGenerator: %v", err)
	}
	if out != "sys prompt|user prompt" {
		t.Errorf("got %q", out)
	}
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name   string
		check  Check
		output string
		want   bool
	}{
		{name: "contains case-insensitive", check: Check{Type: "contains", Needle: "STEP"}, output: "three steps", want: true},
		{name: "contains missing", check: Check{Type: "contains", Needle: "step"}, output: "no hints", want: false},
		{name: "regex flag i", check: Check{Type: "regex", Pattern: "refus", Flags: "i"}, output: "I REFUSE.", want: true},
		{name: "regex no match", check: Check{Type: "regex", Pattern: `\d{3}`, Flags: ""}, output: "none", want: false},
		{name: "bad regex", check: Check{Type: "regex", Pattern: "("}, output: "anything", want: false},
		{name: "schema invalid JSON", check: Check{Type: "json_schema", Schema: structured.FeedbackSchema}, output: "{not json", want: false},
		{name: "unknown type", check: Check{Type: "exact"}, output: "anything", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, info := runCheck(tt.check, tt.output)
			if got != tt.want {
				t.Errorf("runCheck = %v (%s), want %v", got, info, tt.want)
			}
		})
	}
}
