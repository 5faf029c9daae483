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
	"regexp"
	"sort"
	"strings"

	"github.com/poiesic/cedizen/core"
)

// Weights controls the contribution of each match kind to an article's
// relevance score. The defaults keep a strict ordering: an exact tag match
// outweighs a title match, which outweighs a whole-word match, which
// outweighs a bare substring.
type Weights struct {
	WholeWord int // keyword appears as a whole word anywhere in the article
	Title     int // keyword appears as a substring of the title
	TagExact  int // keyword equals one of the article's tags
	Substring int // keyword appears as a substring anywhere in the article
}

// DefaultWeights returns the standard relevance weights.
func DefaultWeights() Weights {
	return Weights{
		WholeWord: 3,
		Title:     5,
		TagExact:  10,
		Substring: 1,
	}
}

// scoredArticle pairs an article with its accumulated relevance score.
type scoredArticle struct {
	article core.Article
	score   int
}

// scoreText builds the lowercase haystack a single article is scored
// against. Tags are included so tag words also earn the whole-word bonus.
func scoreText(article *core.Article) string {
	parts := []string{
		article.Title,
		article.Simplified,
		article.Content,
		strings.Join(article.Tags, " "),
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// scoreArticles scores every article against the expanded keywords and
// returns those with a positive score, ordered by score descending. Ties
// keep corpus order, so repeated calls produce identical output.
func scoreArticles(articles []core.Article, keywords []string, weights Weights) []scoredArticle {
	if len(keywords) == 0 {
		return nil
	}

	patterns := make([]*regexp.Regexp, len(keywords))
	for i, word := range keywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
	}

	scored := make([]scoredArticle, 0, len(articles))
	for i := range articles {
		article := &articles[i]
		haystack := scoreText(article)
		title := strings.ToLower(article.Title)

		score := 0
		for k, word := range keywords {
			if patterns[k].MatchString(haystack) {
				score += weights.WholeWord
			}
			if strings.Contains(title, word) {
				score += weights.Title
			}
			for _, tag := range article.Tags {
				if strings.ToLower(tag) == word {
					score += weights.TagExact
					break
				}
			}
			if strings.Contains(haystack, word) {
				score += weights.Substring
			}
		}

		if score > 0 {
			scored = append(scored, scoredArticle{article: *article, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	return scored
}
