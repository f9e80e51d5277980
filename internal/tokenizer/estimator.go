// Package tokenizer provides approximate token counting for prompt budgeting.
//
// Two strategies exist: an exact subword count backed by tiktoken, and a
// heuristic word/punctuation split that is always available. The strategy is
// probed once when the Estimator is constructed; any failure to load an
// encoding degrades silently to the heuristic.
package tokenizer

import (
	"regexp"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

// wordOrPunct matches a maximal run of word characters (Unicode letters,
// digits, underscore) or a single non-word, non-space character. This split
// is part of the windowing contract: changing it shifts token counts and
// therefore which turns fit a budget.
var wordOrPunct = regexp.MustCompile(`[\p{L}\p{N}_]+|[^\p{L}\p{N}_\s\p{Z}]`)

// Estimator counts tokens using the strategy selected at construction.
type Estimator struct {
	strategy string
	enc      *tiktoken.Tiktoken
}

// New probes for an exact encoder keyed by modelHint, then for the fallback
// encoding, and finally settles on the heuristic. It never fails.
func New(modelHint, fallbackEncoding string) *Estimator {
	if fallbackEncoding == "" {
		fallbackEncoding = defaultEncoding
	}
	if modelHint != "" {
		if enc, err := tiktoken.EncodingForModel(modelHint); err == nil {
			return &Estimator{strategy: "tiktoken/" + modelHint, enc: enc}
		}
	}
	if enc, err := tiktoken.GetEncoding(fallbackEncoding); err == nil {
		return &Estimator{strategy: "tiktoken/" + fallbackEncoding, enc: enc}
	}
	return Heuristic()
}

// Heuristic returns an Estimator using only the word/punctuation split.
func Heuristic() *Estimator {
	return &Estimator{strategy: "heuristic"}
}

// Count returns the approximate token count of text. Empty input is 0.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}
	if e.enc != nil {
		return len(e.enc.Encode(text, nil, nil))
	}
	return len(wordOrPunct.FindAllString(text, -1))
}

// Strategy names the active counting strategy, for reporting.
func (e *Estimator) Strategy() string {
	return e.strategy
}
