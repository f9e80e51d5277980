package guardrails

import (
	"strings"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "refuse", want: ModeRefuse},
		{in: "classify", want: ModeClassify},
		{in: "", want: ModeRefuse},
		{in: " Classify ", want: ModeClassify},
		{in: "block", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseMode(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuildSystemPromptListsCategories(t *testing.T) {
	out := BuildSystemPrompt(ModeRefuse)
	for i, c := range Disallowed {
		if !strings.Contains(out, c) {
			t.Fatalf("expected category %d in system prompt: %s", i+1, c)
		}
	}
	if !strings.Contains(out, "refuse briefly") {
		t.Fatalf("expected refusal task text, got: %s", out)
	}
	if strings.Contains(out, "STRICT JSON") {
		t.Fatalf("refusal mode must not include the classification schema")
	}
}

func TestBuildSystemPromptClassifyEmbedsSchema(t *testing.T) {
	out := BuildSystemPrompt(ModeClassify)
	if !strings.Contains(out, "STRICT JSON") {
		t.Fatalf("expected strict JSON task, got: %s", out)
	}
	if !strings.Contains(out, `"is_violation"`) {
		t.Fatalf("expected schema fields in prompt, got: %s", out)
	}
}

func TestBuildUserPromptPerMode(t *testing.T) {
	if got := BuildUserPrompt("hi", ModeRefuse); got != "User request: hi" {
		t.Fatalf("refuse user prompt = %q", got)
	}
	if got := BuildUserPrompt("hi", ModeClassify); got != "User request to classify: hi" {
		t.Fatalf("classify user prompt = %q", got)
	}
}

func TestValidateClassification(t *testing.T) {
	valid := `{"is_violation": true, "categories": ["Hate or harassment"], "rationale": "targets a protected class"}`
	if ok, info := ValidateClassification([]byte(valid)); !ok {
		t.Fatalf("expected valid classification, got: %s", info)
	}

	invalid := `{"is_violation": "yes", "categories": [], "rationale": ""}`
	if ok, _ := ValidateClassification([]byte(invalid)); ok {
		t.Fatalf("expected rejection of non-boolean is_violation")
	}

	missing := `{"is_violation": false}`
	if ok, _ := ValidateClassification([]byte(missing)); ok {
		t.Fatalf("expected rejection of missing required keys")
	}
}
