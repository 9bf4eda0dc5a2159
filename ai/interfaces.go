package ai

import (
	"context"

	"github.com/poiesic/peeq/core"
)

// Toolbox exposes the catalog operations the assistant's model may invoke
// as tools during a conversation.
// Implementations must be thread-safe for concurrent use.
type Toolbox interface {
	// SearchProducts runs a keyword search over the catalog.
	// Returns an empty slice when nothing matches.
	SearchProducts(ctx context.Context, query string) ([]core.Product, error)

	// CatalogSummary reports the brands, files, and product counts
	// currently loaded in the catalog.
	CatalogSummary(ctx context.Context) (*core.CatalogSummary, error)
}

// PromptSource supplies the system prompt the assistant starts each
// conversation with.
type PromptSource interface {
	// ActiveSystemPrompt returns the currently active prompt content.
	// Implementations fall back to a built-in default when no prompt
	// has been configured.
	ActiveSystemPrompt(ctx context.Context) (string, error)
}

// Assistant produces a reply for a conversation.
// Implementations must be thread-safe for concurrent use.
type Assistant interface {
	// Reply generates the assistant's next message for the given
	// conversation. The conversation must end with a user message.
	Reply(ctx context.Context, messages []core.ChatMessage) (string, error)
}
