// Package retrieval is a toy bag-of-words retriever over a fixed in-memory
// corpus, used by the RAG prompt demo. No external index, no embeddings.
package retrieval

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Document is one retrievable passage.
type Document struct {
	ID   string
	Text string
}

// Hit is a scored retrieval result.
type Hit struct {
	Document
	Score float64
}

// Corpus is the fixed demo corpus.
var Corpus = []Document{
	{ID: "alg_bfs", Text: "Breadth-first search explores neighbors level-by-level using a queue."},
	{ID: "alg_dfs", Text: "Depth-first search explores as far as possible along a branch using a stack or recursion."},
	{ID: "ml_gd", Text: "Gradient descent iteratively updates parameters in the direction of negative gradient to minimize loss."},
	{ID: "ml_lr", Text: "Logistic regression is a linear model for classification using the logistic (sigmoid) function."},
	{ID: "sys_cache", Text: "Caching stores results to serve repeated requests faster, trading memory for latency."},
}

func vectorize(text string) map[string]int {
	vec := make(map[string]int)
	for _, tok := range strings.Fields(text) {
		vec[strings.ToLower(tok)]++
	}
	return vec
}

func cosine(a, b map[string]int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	dot := 0
	for tok, av := range a {
		if bv, ok := b[tok]; ok {
			dot += av * bv
		}
	}
	na, nb := 0, 0
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float64(dot) / (math.Sqrt(float64(na)) * math.Sqrt(float64(nb)))
}

// Retrieve scores every corpus document against the query and returns the
// topK best. Ties keep corpus order, so results are deterministic.
func Retrieve(query string, topK int) []Hit {
	qv := vectorize(query)
	hits := make([]Hit, 0, len(Corpus))
	for _, doc := range Corpus {
		hits = append(hits, Hit{Document: doc, Score: cosine(qv, vectorize(doc.Text))})
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if topK > 0 && topK < len(hits) {
		hits = hits[:topK]
	}
	return hits
}

// BuildInstruction assembles the RAG-style user instruction with numbered
// context blocks ahead of the question.
func BuildInstruction(question string, hits []Hit) string {
	lines := []string{
		"You are a helpful assistant. Use only the CONTEXT to answer the QUESTION.",
		"If the context is insufficient, say you don't know.",
		"\nCONTEXT:",
	}
	for i, hit := range hits {
		lines = append(lines, fmt.Sprintf("[%d] id=%s score=%.3f: %s", i+1, hit.ID, hit.Score, hit.Text))
	}
	lines = append(lines, "\nQUESTION:", question)
	return strings.Join(lines, "\n")
}
