package promptbuild

// Turn is a single role-tagged utterance in a conversation history.
// Turns are immutable once constructed; malformed input never produces one.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PromptParts is the terminal output of prompt assembly: a fixed system
// prompt paired with the caller-supplied user content.
type PromptParts struct {
	System string `json:"system"`
	User   string `json:"user"`
}
