package catalog

import (
	"testing"

	"github.com/poiesic/peeq/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	products := []core.Product{
		{Id: "1", Brand: "Snitch", SourceFile: "snitch.csv"},
		{Id: "2", Brand: "Snitch", SourceFile: "snitch.csv"},
		{Id: "3", Brand: "Fuaark", SourceFile: "fuaark.csv"},
		{Id: "4", Brand: "", SourceFile: "fuaark.csv"},
	}

	summary := Summarize(products)

	assert.Equal(t, 2, summary.TotalFiles)
	assert.Equal(t, 4, summary.TotalProducts)
	assert.Equal(t, []string{"Fuaark", "Snitch"}, summary.Brands)

	require.Len(t, summary.Files, 2)
	// Files are listed in first-occurrence order.
	assert.Equal(t, core.FileCount{Name: "snitch.csv", Count: 2}, summary.Files[0])
	assert.Equal(t, core.FileCount{Name: "fuaark.csv", Count: 2}, summary.Files[1])
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.Zero(t, summary.TotalFiles)
	assert.Zero(t, summary.TotalProducts)
	assert.Empty(t, summary.Brands)
	assert.Empty(t, summary.Files)
}
