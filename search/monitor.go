package search

import "github.com/poiesic/peeq/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate passes during search.
type SearchMonitor interface {
	Start(query string)
	AfterTokenize(tokens []string)
	SubstringFallback(query string, matches []core.Product)
	AfterStrictPass(matches []core.Product)
	AfterFallbackPass(matches []core.Product)
	Finish(results []core.Product)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterTokenize(_ []string)                    {}
func (n *noopMonitor) SubstringFallback(_ string, _ []core.Product) {}
func (n *noopMonitor) AfterStrictPass(_ []core.Product)            {}
func (n *noopMonitor) AfterFallbackPass(_ []core.Product)          {}
func (n *noopMonitor) Finish(_ []core.Product)                     {}
