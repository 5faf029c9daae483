// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"strings"
	"unicode"
)

// stopWords are filler words removed from queries before scoring. The list
// is tuned for conversational questions ("can the police take my phone")
// rather than formal legal prose.
var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {},
	"by": {}, "from": {}, "up": {}, "down": {}, "if": {}, "can": {},
	"cant": {}, "cannot": {}, "could": {}, "would": {}, "should": {},
	"will": {}, "shall": {}, "may": {}, "might": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "no": {}, "not": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "we": {}, "they": {}, "my": {}, "your": {}, "his": {},
	"her": {}, "its": {}, "their": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "who": {}, "whom": {}, "whose": {}, "which": {}, "what": {},
	"where": {}, "when": {}, "why": {}, "how": {}, "all": {}, "any": {},
	"some": {}, "one": {}, "just": {}, "like": {}, "note": {}, "please": {},
	"try": {}, "keywords": {}, "question": {}, "year": {}, "years": {},
	"old": {},
}

// synonyms maps everyday words citizens actually type to the vocabulary the
// articles use, and vice versa. Expansion is bidirectional: a query term
// matching a key adds all its values, and a term matching any value adds
// the key.
var synonyms = map[string][]string{
	"protest": {"demo", "demonstration", "march", "procession", "rally", "gather", "gathering"},
	"police":  {"officer", "arrest", "handcuff", "jail", "cell", "detain"},
	"phone":   {"mobile", "cellphone", "device", "messages", "calls", "whatsapp"},
	"money":   {"pay", "salary", "compensation", "bribe", "fraud"},
	"church":  {"religion", "worship", "faith", "belief", "pastor"},
	"land":    {"property", "house", "building", "home", "evict"},
}

// synonymKeys holds the map keys in a fixed order so expansion output is
// deterministic across runs.
var synonymKeys = []string{"protest", "police", "phone", "money", "church", "land"}

// queryKeywords lowercases the query, strips punctuation, splits on
// whitespace and drops stop words and words of fewer than three characters.
func queryKeywords(query string) []string {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range strings.ToLower(query) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	var keywords []string
	for _, word := range strings.Fields(b.String()) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// expandKeywords grows the keyword list with stemmed variants and synonyms,
// then deduplicates while preserving first-occurrence order. Stemming is
// additive: the stem is appended next to the original word, never replacing
// it, so precision is not lost for exact matches.
func expandKeywords(keywords []string) []string {
	expanded := make([]string, 0, len(keywords)*2)
	expanded = append(expanded, keywords...)

	for _, word := range keywords {
		if strings.HasSuffix(word, "ing") && len(word) > 5 {
			expanded = append(expanded, word[:len(word)-3])
		}
		if strings.HasSuffix(word, "s") && len(word) > 3 {
			expanded = append(expanded, word[:len(word)-1])
		}
		if strings.HasSuffix(word, "ies") && len(word) > 4 {
			expanded = append(expanded, word[:len(word)-3]+"y")
		}

		if values, ok := synonyms[word]; ok {
			expanded = append(expanded, values...)
		}
		for _, key := range synonymKeys {
			for _, value := range synonyms[key] {
				if value == word {
					expanded = append(expanded, key)
					break
				}
			}
		}
	}

	seen := make(map[string]struct{}, len(expanded))
	unique := expanded[:0]
	for _, word := range expanded {
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		unique = append(unique, word)
	}
	return unique
}
