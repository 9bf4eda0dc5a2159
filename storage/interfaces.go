package storage

import (
	"context"

	"github.com/poiesic/peeq/core"
)

// PromptRepository manages the versioned history of the assistant's
// system prompt. Versions are assigned sequentially starting at 1, and
// at most one record is active at any time.
// Implementations must be thread-safe and support concurrent access.
type PromptRepository interface {
	// AddPrompt stores a new prompt version. The record receives the next
	// version number, is marked active, and every other record is
	// deactivated in the same transaction.
	AddPrompt(ctx context.Context, content string) (*core.PromptRecord, error)

	// ActivePrompt returns the currently active prompt.
	// Returns ErrNotFound when no prompt has been stored yet.
	ActivePrompt(ctx context.Context) (*core.PromptRecord, error)

	// ListPrompts returns all stored prompt versions, newest first.
	ListPrompts(ctx context.Context) ([]*core.PromptRecord, error)

	// ActivatePrompt makes an existing version the active one,
	// deactivating the rest. Returns ErrNotFound for unknown versions.
	ActivatePrompt(ctx context.Context, version int64) (*core.PromptRecord, error)

	// Close closes the repository and releases resources.
	Close() error
}
