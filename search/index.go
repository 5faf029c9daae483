package search

import (
	"sort"
	"strings"
	"unicode"
)

// Index is the pluggable full-text lookup behind the Engine. Implementations
// tokenize with their own rules, independent of the query normalizer, and
// rank by their own internal relevance notion.
type Index interface {
	// Build replaces the index contents with the given search strings,
	// keyed by their position in the slice.
	Build(docs []string)

	// Query returns up to limit document positions ranked by relevance.
	// An empty query or a query with no indexed tokens returns no
	// positions, never an error.
	Query(text string, limit int) []int
}

// invertedIndex maps tokens to the documents containing them, tolerating
// partial token matches so that "searc" still reaches "search". Lookups scan
// the term vocabulary for substring hits, which is fine at corpus scale
// (hundreds of documents).
type invertedIndex struct {
	postings map[string]map[int]int // term -> document position -> occurrences
	docCount int
}

var _ Index = (*invertedIndex)(nil)

// NewInvertedIndex creates the default Index implementation.
func NewInvertedIndex() Index {
	return &invertedIndex{
		postings: make(map[string]map[int]int),
	}
}

// Build replaces the index contents. There is no incremental update path;
// the index is rebuilt in full whenever the corpus is loaded.
func (ix *invertedIndex) Build(docs []string) {
	ix.postings = make(map[string]map[int]int)
	ix.docCount = len(docs)

	for pos, doc := range docs {
		for _, term := range indexTokens(doc) {
			byDoc, ok := ix.postings[term]
			if !ok {
				byDoc = make(map[int]int)
				ix.postings[term] = byDoc
			}
			byDoc[pos]++
		}
	}
}

// Query tokenizes text with the index's own rules and ranks documents by
// accumulated term hits. Exact term matches count double; substring matches
// in either direction count single.
func (ix *invertedIndex) Query(text string, limit int) []int {
	if limit <= 0 {
		return nil
	}

	tokens := indexTokens(text)
	if len(tokens) == 0 {
		return nil
	}

	scores := make(map[int]int)
	for _, token := range tokens {
		if byDoc, ok := ix.postings[token]; ok {
			for pos, count := range byDoc {
				scores[pos] += 2 * count
			}
		}
		for term, byDoc := range ix.postings {
			if term == token {
				continue
			}
			if strings.Contains(term, token) || strings.Contains(token, term) {
				for pos, count := range byDoc {
					scores[pos] += count
				}
			}
		}
	}

	if len(scores) == 0 {
		return nil
	}

	positions := make([]int, 0, len(scores))
	for pos := range scores {
		positions = append(positions, pos)
	}
	// Ties keep document order so results are deterministic.
	sort.Slice(positions, func(i, j int) bool {
		if scores[positions[i]] != scores[positions[j]] {
			return scores[positions[i]] > scores[positions[j]]
		}
		return positions[i] < positions[j]
	})

	if len(positions) > limit {
		positions = positions[:limit]
	}
	return positions
}

// indexTokens lowercases text and splits on non-alphanumeric boundaries.
// Single runes and stop words are dropped; numeric tokens such as article
// labels survive.
func indexTokens(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := words[:0]
	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}
