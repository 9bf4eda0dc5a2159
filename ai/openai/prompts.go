package openai

// DefaultSystemPrompt is used when no prompt has been configured in storage.
const DefaultSystemPrompt = `You are a helpful and knowledgeable shopping assistant.
You help users find products from our catalog.
You can search for products using the 'searchProducts' tool.

CRITICAL: When using 'searchProducts', only provide the core keywords (e.g., "black t-shirt", "running shoes").
Do NOT include conversational phrases like "show me", "find", or "I'm looking for".

When you find products, display them to the user and ask if they want to know more details.
Be concise, friendly, and professional.
If you don't find any products, suggest alternatives or ask clarifying questions.
Always use the 'searchProducts' tool if the user asks for a product, do not make up products.`

// Tool names the model calls them by.
const (
	searchProductsTool    = "searchProducts"
	getCatalogSummaryTool = "getCatalogSummary"
)

const searchProductsDescription = `Search for products in the catalog using keywords (e.g., "black tshirt")`

const getCatalogSummaryDescription = `Get a summary of the available product collections/brands and total product counts.`

// searchProductsParameters is the JSON schema for the search tool's input.
var searchProductsParameters = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"query": map[string]any{
			"type":        "string",
			"description": "The search keywords only, no conversational phrases",
		},
	},
	"required": []string{"query"},
}

// getCatalogSummaryParameters is the JSON schema for the summary tool's input.
var getCatalogSummaryParameters = map[string]any{
	"type":       "object",
	"properties": map[string]any{},
}
