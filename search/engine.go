package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/peeq/catalog"
	"github.com/poiesic/peeq/core"
)

// maxResults caps every search result set.
const maxResults = 10

// Engine ranks the cached catalog against free-text queries.
// Searches are pure functions of (query, cached catalog) and never fail.
type Engine struct {
	catalog *catalog.Cache
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a search engine over the given catalog cache.
func NewEngine(cache *catalog.Cache, opts ...Option) (*Engine, error) {
	if cache == nil {
		return nil, ErrCatalogRequired
	}

	e := &Engine{
		catalog: cache,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Search returns up to ten products ranked against the query,
// most relevant first.
func (e *Engine) Search(ctx context.Context, query string) []core.Product {
	return e.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor runs a search with monitoring. The monitor receives
// callbacks after each pass of the match process.
func (e *Engine) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) []core.Product {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	products := e.catalog.Products(ctx)

	tokens := Tokenize(query)
	monitor.AfterTokenize(tokens)

	// Degenerate queries (only punctuation or short words) fall back to a
	// raw substring match over name and brand.
	if len(tokens) == 0 {
		results := e.substringFallback(query, products, monitor)
		monitor.Finish(results)
		return results
	}

	// Strict pass: keep products matching every token.
	var strict []core.Product
	for _, product := range products {
		if containsAll(product.SearchText(), tokens) {
			strict = append(strict, product)
		}
	}
	monitor.AfterStrictPass(strict)

	chosen := strict
	if len(strict) == 0 {
		chosen = e.fallbackPass(products, tokens)
		monitor.AfterFallbackPass(chosen)
	}

	results := dedupAndCap(chosen)
	e.logger.Debug("search complete", "query", query, "tokens", len(tokens), "results", len(results))
	monitor.Finish(results)
	return results
}

// substringFallback matches the trimmed raw query against product names
// and brands only. An empty trimmed query yields no results.
func (e *Engine) substringFallback(query string, products []core.Product, monitor SearchMonitor) []core.Product {
	lower := strings.ToLower(strings.TrimSpace(query))
	matches := []core.Product{}
	if lower == "" {
		monitor.SubstringFallback(lower, matches)
		return matches
	}

	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), lower) ||
			strings.Contains(strings.ToLower(product.Brand), lower) {
			matches = append(matches, product)
			if len(matches) == maxResults {
				break
			}
		}
	}
	monitor.SubstringFallback(lower, matches)
	return matches
}

// fallbackPass scores products by how many tokens they match and orders
// them by that count. The sort is stable so catalog order breaks ties.
func (e *Engine) fallbackPass(products []core.Product, tokens []string) []core.Product {
	type scored struct {
		product core.Product
		count   int
	}

	var hits []scored
	for _, product := range products {
		if count := countMatches(product.SearchText(), tokens); count > 0 {
			hits = append(hits, scored{product: product, count: count})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].count > hits[j].count
	})

	results := make([]core.Product, len(hits))
	for i, hit := range hits {
		results[i] = hit.product
	}
	return results
}

// dedupAndCap removes duplicate ids, preserving order, and truncates the
// result to the cap. The catalog is already deduplicated; this guards
// against future duplicate-catalog edge cases.
func dedupAndCap(products []core.Product) []core.Product {
	results := []core.Product{}
	seen := make(map[string]bool, len(products))
	for _, product := range products {
		if seen[product.Id] {
			continue
		}
		seen[product.Id] = true
		results = append(results, product)
		if len(results) == maxResults {
			break
		}
	}
	return results
}
