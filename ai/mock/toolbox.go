package mock

import (
	"context"
	"strings"

	"github.com/poiesic/peeq/ai"
	"github.com/poiesic/peeq/core"
)

// MockToolbox is a test double for ai.Toolbox.
// It allows custom behavior injection via function fields.
type MockToolbox struct {
	// SearchProductsFunc is called by SearchProducts if set.
	// If nil, searches the Products slice by substring match on name.
	SearchProductsFunc func(ctx context.Context, query string) ([]core.Product, error)

	// CatalogSummaryFunc is called by CatalogSummary if set.
	// If nil, summarizes the Products slice.
	CatalogSummaryFunc func(ctx context.Context) (*core.CatalogSummary, error)

	// Products is the canned catalog used by the default behaviors.
	Products []core.Product

	searchCalls  int
	summaryCalls int
}

var _ ai.Toolbox = (*MockToolbox)(nil)

// NewMockToolbox creates a mock toolbox with a small canned catalog.
// Note: Returns concrete type to allow test assertions.
func NewMockToolbox() *MockToolbox {
	return &MockToolbox{
		Products: []core.Product{
			{
				Id:       "snitch.csv-mock-tee",
				Name:     "Mock Tee",
				Price:    999,
				Category: "T-Shirts",
				Brand:    "Snitch",
			},
			{
				Id:       "fuaark.csv-mock-joggers",
				Name:     "Mock Joggers",
				Price:    1499,
				Category: "Joggers",
				Brand:    "FUAARK",
			},
		},
	}
}

// SearchProducts returns catalog entries whose name contains the query.
func (m *MockToolbox) SearchProducts(ctx context.Context, query string) ([]core.Product, error) {
	m.searchCalls++

	if m.SearchProductsFunc != nil {
		return m.SearchProductsFunc(ctx, query)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	results := []core.Product{}
	for _, product := range m.Products {
		if needle == "" || strings.Contains(strings.ToLower(product.Name), needle) {
			results = append(results, product)
		}
	}
	return results, nil
}

// CatalogSummary summarizes the canned catalog.
func (m *MockToolbox) CatalogSummary(ctx context.Context) (*core.CatalogSummary, error) {
	m.summaryCalls++

	if m.CatalogSummaryFunc != nil {
		return m.CatalogSummaryFunc(ctx)
	}

	summary := &core.CatalogSummary{TotalProducts: len(m.Products)}
	seen := map[string]bool{}
	files := map[string]int{}
	for _, product := range m.Products {
		if product.Brand != "" && !seen[product.Brand] {
			seen[product.Brand] = true
			summary.Brands = append(summary.Brands, product.Brand)
		}
		files[product.SourceFile]++
	}
	for name, count := range files {
		summary.Files = append(summary.Files, core.FileCount{Name: name, Count: count})
	}
	summary.TotalFiles = len(summary.Files)
	return summary, nil
}

// SearchCallCount returns the number of times SearchProducts was called.
func (m *MockToolbox) SearchCallCount() int {
	return m.searchCalls
}

// SummaryCallCount returns the number of times CatalogSummary was called.
func (m *MockToolbox) SummaryCallCount() int {
	return m.summaryCalls
}

// Reset clears the call counts and custom functions.
func (m *MockToolbox) Reset() {
	m.searchCalls = 0
	m.summaryCalls = 0
	m.SearchProductsFunc = nil
	m.CatalogSummaryFunc = nil
}
