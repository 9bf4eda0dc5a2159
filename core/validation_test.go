package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateChatMessage(t *testing.T) {
	t.Run("valid user message", func(t *testing.T) {
		msg := &ChatMessage{Role: RoleUser, Content: "show me black tshirts"}
		assert.NoError(t, ValidateChatMessage(msg))
	})

	t.Run("valid assistant message", func(t *testing.T) {
		msg := &ChatMessage{Role: RoleAssistant, Content: "Here are a few options."}
		assert.NoError(t, ValidateChatMessage(msg))
	})

	t.Run("nil message", func(t *testing.T) {
		err := ValidateChatMessage(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidChatMessage)
	})

	t.Run("empty content", func(t *testing.T) {
		err := ValidateChatMessage(&ChatMessage{Role: RoleUser})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("invalid role", func(t *testing.T) {
		err := ValidateChatMessage(&ChatMessage{Role: Role(99), Content: "hi"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("zero role", func(t *testing.T) {
		err := ValidateChatMessage(&ChatMessage{Content: "hi"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}

func TestValidatePromptRecord(t *testing.T) {
	t.Run("valid record", func(t *testing.T) {
		record := &PromptRecord{
			Version:   1,
			Content:   "You are a helpful shopping assistant.",
			Active:    true,
			CreatedAt: time.Now().UTC(),
		}
		assert.NoError(t, ValidatePromptRecord(record))
	})

	t.Run("nil record", func(t *testing.T) {
		err := ValidatePromptRecord(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPromptRecord)
	})

	t.Run("empty content", func(t *testing.T) {
		err := ValidatePromptRecord(&PromptRecord{Version: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("non-positive version", func(t *testing.T) {
		err := ValidatePromptRecord(&PromptRecord{Version: 0, Content: "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})
}
