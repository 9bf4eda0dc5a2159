package peeq

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCsv = `product_id,product_title,handle,vendor,variant_price,tags,option1,product_images
p1,Red Oversized Tshirt,red-oversized-tshirt,Snitch,999,Cotton,L,
p2,Blue Classic Shirt,blue-classic-shirt,Snitch,1299,Formal,M,
`

func newTestApp(t *testing.T) *App {
	t.Helper()

	dataDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "snitch.csv"), []byte(fixtureCsv), 0644))

	app, err := NewApp(dataDir, "")
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestNewApp_RequiresDataDir(t *testing.T) {
	_, err := NewApp("", "")
	assert.Error(t, err)
}

func TestApp_Search(t *testing.T) {
	app := newTestApp(t)

	results := app.Search(context.Background(), "red tshirt")
	require.Len(t, results, 1)
	assert.Equal(t, "Red Oversized Tshirt", results[0].Name)
}

func TestApp_CatalogSummary(t *testing.T) {
	app := newTestApp(t)

	summary := app.Catalog().Summary(context.Background())
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, []string{"Snitch"}, summary.Brands)
}

func TestApp_Prompts(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	record, err := app.Prompts().AddPrompt(ctx, "Recommend within budget.")
	require.NoError(t, err)
	assert.Equal(t, int64(1), record.Version)

	active, err := app.Prompts().ActivePrompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Recommend within budget.", active.Content)
}

func TestApp_ToolboxUsesCatalog(t *testing.T) {
	app := newTestApp(t)
	tb := &toolbox{app: app}
	ctx := context.Background()

	products, err := tb.SearchProducts(ctx, "blue shirt")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Blue Classic Shirt", products[0].Name)

	summary, err := tb.CatalogSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalProducts)
}

func TestApp_PromptSourceFallsBackWhenEmpty(t *testing.T) {
	app := newTestApp(t)
	source := &promptSource{prompts: app.Prompts()}

	prompt, err := source.ActiveSystemPrompt(context.Background())
	require.NoError(t, err)
	assert.Contains(t, prompt, "shopping assistant")
}

func TestApp_WithoutAssistant(t *testing.T) {
	app := newTestApp(t)
	assert.Nil(t, app.Assistant())
}
