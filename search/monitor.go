package search

import (
	"github.com/poiesic/cedizen/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterIndexLookup(articles []core.Article)
	AfterKeywordExpansion(keywords []string)
	AfterScoring(articles []core.Article)
	Finish(results []core.Article)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) AfterIndexLookup(_ []core.Article) {}
func (n *noopMonitor) AfterKeywordExpansion(_ []string)  {}
func (n *noopMonitor) AfterScoring(_ []core.Article)     {}
func (n *noopMonitor) Finish(_ []core.Article)           {}
