// Package dynamic builds a user message at runtime from detected language,
// topic, and requested detail level.
package dynamic

import (
	"fmt"
	"regexp"
	"strings"
)

// Params drive the dynamic prompt construction.
type Params struct {
	Language string
	Topic    string
	Detail   string // "basic" | "normal" | "deep"
}

type langAlias struct {
	alias string
	name  string
}

// langAliases is ordered: longer, more specific aliases first so detection
// is deterministic when several aliases occur in the same message.
var langAliases = []langAlias{
	{"javascript", "JavaScript"},
	{"typescript", "TypeScript"},
	{"csharp", "C#"},
	{"golang", "Go"},
	{"python", "Python"},
	{"kotlin", "Kotlin"},
	{"swift", "Swift"},
	{"rust", "Rust"},
	{"ruby", "Ruby"},
	{"java", "Java"},
	{"php", "PHP"},
	{"cpp", "C++"},
	{"c++", "C++"},
	{"c#", "C#"},
	{"py", "Python"},
	{"js", "JavaScript"},
	{"ts", "TypeScript"},
	{"go", "Go"},
}

var codeFence = map[string]string{
	"C++":        "cpp",
	"C#":         "csharp",
	"Python":     "python",
	"Java":       "java",
	"JavaScript": "javascript",
	"TypeScript": "typescript",
	"Go":         "go",
	"Rust":       "rust",
	"Ruby":       "ruby",
	"PHP":        "php",
	"Kotlin":     "kotlin",
	"Swift":      "swift",
}

var topicPattern = regexp.MustCompile(`(?i)(?:for|implement|write)\s+(.*)`)

// NormalizeLanguage maps an alias like "cpp" to its display name, or returns
// the input unchanged when it is not a known alias.
func NormalizeLanguage(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, la := range langAliases {
		if la.alias == lower {
			return la.name
		}
	}
	return s
}

// DetectLanguage scans the message for a known language alias delimited by
// non-word characters. Returns "" when nothing matches.
func DetectLanguage(text string) string {
	t := strings.ToLower(text)
	for _, la := range langAliases {
		pattern := `(^|[^\pL\pN_])` + regexp.QuoteMeta(la.alias) + `($|[^\pL\pN_+#])`
		if regexp.MustCompile(pattern).MatchString(t) {
			return la.name
		}
	}
	return ""
}

// GuessTopic extracts the phrase following "for", "implement", or "write";
// falls back to the whole message.
func GuessTopic(text string) string {
	if m := topicPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimRight(strings.TrimSpace(m[1]), ". ")
	}
	return strings.TrimRight(strings.TrimSpace(text), ". ")
}

var detailLines = map[string]string{
	"basic":  "Provide a short explanation and core code only.",
	"normal": "Include brief explanation, the code, and time/space complexity.",
	"deep":   "Provide a concise overview, well-commented code, complexity, and 2-3 edge cases to consider.",
}

// ValidDetail reports whether a detail level is recognized.
func ValidDetail(s string) bool {
	_, ok := detailLines[s]
	return ok
}

// BuildUserMessage composes the dynamic user message from the params.
func BuildUserMessage(p Params) string {
	lines := []string{
		"You are a technical interview coach.",
		fmt.Sprintf("The user requests an implementation related to: %s.", p.Topic),
		fmt.Sprintf("Your task is to produce clear, well-commented %s code.", p.Language),
		detailLines[p.Detail],
		"Respond in Markdown.",
	}
	if fence, ok := codeFence[p.Language]; ok {
		lines = append(lines, fmt.Sprintf("Label the code block as `%s`.", fence))
	}
	return strings.Join(lines, "\n")
}
