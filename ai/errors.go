package ai

import "errors"

var (
	// ErrToolboxRequired indicates that an assistant was created without a toolbox.
	ErrToolboxRequired = errors.New("toolbox is required")

	// ErrEmptyConversation indicates that a reply was requested for an empty conversation.
	ErrEmptyConversation = errors.New("conversation is empty")

	// ErrLastMessageNotUser indicates that the conversation does not end with a user message.
	ErrLastMessageNotUser = errors.New("conversation must end with a user message")

	// ErrNoResponse indicates that the model produced no usable reply.
	ErrNoResponse = errors.New("model produced no response")
)
