package catalog

import (
	"sort"

	"github.com/poiesic/peeq/core"
)

// Summarize derives file and brand statistics from a product sequence.
// Files are listed in first-occurrence order; brands are unique, non-empty
// and sorted.
func Summarize(products []core.Product) *core.CatalogSummary {
	brandSet := make(map[string]bool)
	counts := make(map[string]int)
	var fileOrder []string

	for _, product := range products {
		if product.Brand != "" {
			brandSet[product.Brand] = true
		}
		if product.SourceFile != "" {
			if _, ok := counts[product.SourceFile]; !ok {
				fileOrder = append(fileOrder, product.SourceFile)
			}
			counts[product.SourceFile]++
		}
	}

	brands := make([]string, 0, len(brandSet))
	for brand := range brandSet {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	files := make([]core.FileCount, 0, len(fileOrder))
	for _, name := range fileOrder {
		files = append(files, core.FileCount{Name: name, Count: counts[name]})
	}

	return &core.CatalogSummary{
		TotalFiles:    len(files),
		TotalProducts: len(products),
		Brands:        brands,
		Files:         files,
	}
}
