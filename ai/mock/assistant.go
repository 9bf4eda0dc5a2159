package mock

import (
	"context"

	"github.com/poiesic/peeq/ai"
	"github.com/poiesic/peeq/core"
)

// MockAssistant is a test double for ai.Assistant.
// It allows custom behavior injection via function fields.
type MockAssistant struct {
	// ReplyFunc is called by Reply if set.
	// If nil, echoes the last message back with a fixed prefix.
	ReplyFunc func(ctx context.Context, messages []core.ChatMessage) (string, error)

	callCount int

	// LastMessages holds the conversation passed to the most recent Reply call.
	LastMessages []core.ChatMessage
}

var _ ai.Assistant = (*MockAssistant)(nil)

// NewMockAssistant creates a mock assistant with default echo behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAssistant() *MockAssistant {
	return &MockAssistant{}
}

// Reply echoes the last user message unless ReplyFunc is set.
func (m *MockAssistant) Reply(ctx context.Context, messages []core.ChatMessage) (string, error) {
	m.callCount++
	m.LastMessages = messages

	if m.ReplyFunc != nil {
		return m.ReplyFunc(ctx, messages)
	}

	if len(messages) == 0 {
		return "", ai.ErrEmptyConversation
	}
	return "echo: " + messages[len(messages)-1].Content, nil
}

// CallCount returns the number of times Reply was called.
func (m *MockAssistant) CallCount() int {
	return m.callCount
}

// Reset clears the call count, recorded messages, and custom functions.
func (m *MockAssistant) Reset() {
	m.callCount = 0
	m.LastMessages = nil
	m.ReplyFunc = nil
}
