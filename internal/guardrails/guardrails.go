// Package guardrails composes safety-oriented system prompts: a refusal
// variant and a JSON-classification variant with its policy schema.
package guardrails

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kayz/promptlab/internal/structured"
)

// Mode selects the guardrail prompt variant.
type Mode string

const (
	ModeRefuse   Mode = "refuse"
	ModeClassify Mode = "classify"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRefuse, "":
		return ModeRefuse, nil
	case ModeClassify:
		return ModeClassify, nil
	default:
		return "", fmt.Errorf("unknown guardrails mode: %q (want refuse or classify)", s)
	}
}

// Disallowed lists the policy categories embedded in the system prompt.
var Disallowed = []string{
	"Illegal or harmful instructions (e.g., weapons, explosives, hard drugs)",
	"Self-harm encouragement or instructions",
	"Hate or harassment targeted at protected classes",
	"Sexual content involving minors or explicit sexual content",
	"Malware creation or unauthorized access (hacking) guidance",
	"Sensitive personal data disclosure or deanonymization",
}

// ClassifySchema is the JSON Schema for classification-mode output.
var ClassifySchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"is_violation", "categories", "rationale"},
	"properties": map[string]any{
		"is_violation": map[string]any{"type": "boolean"},
		"categories": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Zero or more categories from the policy list",
		},
		"rationale": map[string]any{"type": "string"},
	},
}

// BuildSystemPrompt composes the safety system prompt for a mode.
func BuildSystemPrompt(mode Mode) string {
	lines := []string{
		"You are a safe and responsible assistant.",
		"Disallowed content categories:",
	}
	for i, c := range Disallowed {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
	}

	if mode == ModeClassify {
		schemaJSON, _ := json.MarshalIndent(ClassifySchema, "", "  ")
		lines = append(lines,
			"\nTask: Classify if the user's request violates any category.",
			"Return STRICT JSON only, validating this schema:",
			"```json",
			string(schemaJSON),
			"```",
		)
	} else {
		lines = append(lines,
			"\nTask: If the user request violates policy, refuse briefly and offer a safe, educational alternative.",
			"If it does not violate policy, answer normally but remain cautious and factual.",
		)
	}
	return strings.Join(lines, "\n")
}

// BuildUserPrompt wraps the raw user input for a mode.
func BuildUserPrompt(userInput string, mode Mode) string {
	if mode == ModeClassify {
		return "User request to classify: " + userInput
	}
	return "User request: " + userInput
}

// ValidateClassification checks a candidate classification payload against
// ClassifySchema, returning a pass/fail and a human-readable reason.
func ValidateClassification(payload []byte) (bool, string) {
	return structured.ValidateAgainst(ClassifySchema, payload)
}
