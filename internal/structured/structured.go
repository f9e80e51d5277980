// Package structured builds the strict-JSON output prompt for the interview
// feedback demo and validates candidate payloads against its schema.
package structured

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FeedbackSchema is the JSON Schema the model output must satisfy.
var FeedbackSchema = map[string]any{
	"title":                "InterviewFeedback",
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"strengths", "weaknesses", "score", "recommendations"},
	"properties": map[string]any{
		"strengths": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
		"weaknesses": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
		"score": map[string]any{"type": "integer", "minimum": 0, "maximum": 10},
		"recommendations": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string"},
			"minItems": 1,
		},
	},
}

// BuildInstruction composes the strict-JSON instruction for a topic.
func BuildInstruction(topic string) string {
	if strings.TrimSpace(topic) == "" {
		topic = "General interview answer review"
	}
	schemaJSON, _ := json.MarshalIndent(FeedbackSchema, "", "  ")
	lines := []string{
		"You are an interview coach. Return feedback as STRICT JSON only.",
		fmt.Sprintf("Topic: %s.", topic),
		"Do not include any prose or explanation outside of the JSON.",
		"The JSON MUST validate against this JSON Schema:",
		"```json",
		string(schemaJSON),
		"```",
		"Rules:",
		"- No additional properties beyond those in the schema.",
		"- Use integers for 'score' between 0 and 10 inclusive.",
		"- Provide at least one item for each array.",
	}
	return strings.Join(lines, "\n")
}

// ValidatePayload reports whether a candidate JSON document satisfies the
// feedback schema, with a human-readable reason.
func ValidatePayload(payload []byte) (bool, string) {
	return ValidateAgainst(FeedbackSchema, payload)
}

// ValidateAgainst validates raw JSON against an arbitrary schema document.
func ValidateAgainst(schema map[string]any, payload []byte) (bool, string) {
	if !json.Valid(payload) {
		return false, "payload is not valid JSON"
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return false, fmt.Sprintf("schema validation error: %v", err)
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return false, "invalid payload: " + strings.Join(reasons, "; ")
	}
	return true, "Valid per JSON Schema"
}
