// Package toolcall defines the demo tool catalog and validates candidate
// tool-call payloads against each tool's parameter schema.
package toolcall

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Tool describes one callable tool and the JSON Schema of its arguments.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Catalog is the fixed demo toolset.
var Catalog = map[string]Tool{
	"get_weather": {
		Name:        "get_weather",
		Description: "Get weather for a city",
		Parameters: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []any{"location"},
			"properties": map[string]any{
				"location": map[string]any{"type": "string", "minLength": 1},
				"unit":     map[string]any{"type": "string", "enum": []any{"C", "F"}, "default": "C"},
				"date":     map[string]any{"type": "string", "description": "YYYY-MM-DD (optional)"},
			},
		},
	},
	"search_docs": {
		Name:        "search_docs",
		Description: "Search internal documentation",
		Parameters: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []any{"query"},
			"properties": map[string]any{
				"query": map[string]any{"type": "string", "minLength": 3},
				"top_k": map[string]any{"type": "integer", "minimum": 1, "maximum": 20, "default": 5},
			},
		},
	},
	"schedule_meeting": {
		Name:        "schedule_meeting",
		Description: "Create a calendar event",
		Parameters: map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"required":             []any{"title", "date", "attendees"},
			"properties": map[string]any{
				"title": map[string]any{"type": "string", "minLength": 3},
				"date":  map[string]any{"type": "string", "description": "YYYY-MM-DD or ISO datetime"},
				"attendees": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"duration_minutes": map[string]any{"type": "integer", "minimum": 15, "default": 30},
			},
		},
	},
}

// Call is a candidate tool invocation to validate.
type Call struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
}

// BuildInstruction composes the tool-selection instruction, embedding the
// catalog as pretty-printed JSON. Tools are listed in name order so the
// output is stable.
func BuildInstruction(userGoal string) string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]Tool, 0, len(names))
	for _, name := range names {
		specs = append(specs, Catalog[name])
	}
	specJSON, _ := json.MarshalIndent(specs, "", "  ")

	if strings.TrimSpace(userGoal) == "" {
		userGoal = "General task"
	}
	lines := []string{
		"You are a tool-using assistant. Select exactly one tool that best solves the user's request.",
		"Return ONLY a JSON object, no prose, of the form:",
		"{\n  \"tool\": \"<tool_name>\",\n  \"arguments\": { /* per tool schema */ }\n}",
		"Do not include explanations.",
		fmt.Sprintf("User goal: %s", userGoal),
		"Available tools (name, description, parameters JSON Schema):",
		"```json",
		string(specJSON),
		"```",
		"Rules:",
		"- Choose the most appropriate single tool.",
		"- Arguments must validate against the chosen tool's JSON Schema.",
		"- Provide only the fields defined by the schema (no extras).",
	}
	return strings.Join(lines, "\n")
}

// ValidateCall checks a candidate payload: known tool, object arguments, and
// arguments valid per the tool's parameter schema. The reason string is
// human-readable; validation failures are results, never errors.
func ValidateCall(payload []byte) (bool, string) {
	var call Call
	if err := json.Unmarshal(payload, &call); err != nil {
		return false, fmt.Sprintf("payload is not a valid tool-call object: %v", err)
	}
	tool, ok := Catalog[call.Tool]
	if !ok {
		return false, fmt.Sprintf("unknown tool: %q", call.Tool)
	}
	if call.Arguments == nil {
		return false, "'arguments' must be an object"
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(tool.Parameters),
		gojsonschema.NewGoLoader(call.Arguments),
	)
	if err != nil {
		return false, fmt.Sprintf("schema validation error: %v", err)
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return false, "invalid arguments: " + strings.Join(reasons, "; ")
	}
	return true, "Valid per JSON Schema"
}
