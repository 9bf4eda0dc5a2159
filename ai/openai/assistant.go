// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/peeq/ai"
	"github.com/poiesic/peeq/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Assistant implements ai.Assistant using OpenAI-compatible chat APIs.
type Assistant struct {
	client       llms.Model
	toolbox      ai.Toolbox
	prompts      ai.PromptSource
	maxToolSteps int
	logger       *slog.Logger
}

var _ ai.Assistant = (*Assistant)(nil)

// newAssistant is an internal constructor that returns the concrete type.
func newAssistant(config *ai.Config, toolbox ai.Toolbox, prompts ai.PromptSource) (*Assistant, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if toolbox == nil {
		return nil, ai.ErrToolboxRequired
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.APIKey),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Assistant{
		client:       client,
		toolbox:      toolbox,
		prompts:      prompts,
		maxToolSteps: config.MaxToolSteps,
		logger:       slog.Default().With("component", "openai-assistant"),
	}, nil
}

// NewAssistant creates an assistant backed by an OpenAI-compatible chat API.
// The prompts source may be nil, in which case the built-in default system
// prompt is used for every conversation.
//
// Returns ai.Assistant interface to enforce abstraction.
func NewAssistant(config *ai.Config, toolbox ai.Toolbox, prompts ai.PromptSource) (ai.Assistant, error) {
	return newAssistant(config, toolbox, prompts)
}

// Reply generates the assistant's next message for the given conversation.
// The model may call the catalog tools before answering; each tool round-trip
// counts against the configured step limit.
func (a *Assistant) Reply(ctx context.Context, messages []core.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", ai.ErrEmptyConversation
	}
	for i := range messages {
		if err := core.ValidateChatMessage(&messages[i]); err != nil {
			return "", err
		}
	}
	if messages[len(messages)-1].Role != core.RoleUser {
		return "", ai.ErrLastMessageNotUser
	}

	history := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, a.systemPrompt(ctx)),
	}
	for _, msg := range messages {
		role := llms.ChatMessageTypeHuman
		if msg.Role == core.RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		history = append(history, llms.TextParts(role, msg.Content))
	}

	tools := []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        searchProductsTool,
				Description: searchProductsDescription,
				Parameters:  searchProductsParameters,
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        getCatalogSummaryTool,
				Description: getCatalogSummaryDescription,
				Parameters:  getCatalogSummaryParameters,
			},
		},
	}

	var lastContent string
	for step := 0; step < a.maxToolSteps; step++ {
		response, err := a.client.GenerateContent(ctx, history, llms.WithTools(tools))
		if err != nil {
			a.logger.Error("failed to generate content", "step", step+1, "err", err)
			return "", err
		}
		if len(response.Choices) < 1 {
			return "", ai.ErrNoResponse
		}

		choice := response.Choices[0]
		lastContent = strings.TrimSpace(choice.Content)

		if len(choice.ToolCalls) == 0 {
			if lastContent == "" {
				return "", ai.ErrNoResponse
			}
			return lastContent, nil
		}

		// Echo the model's tool calls back into the history, then answer
		// each one with a tool response message.
		assistantParts := make([]llms.ContentPart, 0, len(choice.ToolCalls))
		for _, call := range choice.ToolCalls {
			assistantParts = append(assistantParts, call)
		}
		history = append(history, llms.MessageContent{
			Role:  llms.ChatMessageTypeAI,
			Parts: assistantParts,
		})

		for _, call := range choice.ToolCalls {
			result := a.executeTool(ctx, call)
			history = append(history, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: call.ID,
						Name:       call.FunctionCall.Name,
						Content:    result,
					},
				},
			})
		}
	}

	a.logger.Warn("tool step limit reached", "maxToolSteps", a.maxToolSteps)
	if lastContent != "" {
		return lastContent, nil
	}
	return "", ai.ErrNoResponse
}

// systemPrompt fetches the active prompt, falling back to the built-in
// default when no source is configured or the lookup fails.
func (a *Assistant) systemPrompt(ctx context.Context) string {
	if a.prompts == nil {
		return DefaultSystemPrompt
	}
	prompt, err := a.prompts.ActiveSystemPrompt(ctx)
	if err != nil {
		a.logger.Warn("failed to fetch system prompt, using default", "err", err)
		return DefaultSystemPrompt
	}
	return prompt
}

// executeTool dispatches a single tool call to the toolbox. Failures are
// rendered as text for the model rather than propagated as errors.
func (a *Assistant) executeTool(ctx context.Context, call llms.ToolCall) string {
	name := call.FunctionCall.Name
	a.logger.Debug("executing tool call", "tool", name, "args", call.FunctionCall.Arguments)

	switch name {
	case searchProductsTool:
		var args struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal([]byte(call.FunctionCall.Arguments), &args); err != nil {
			return fmt.Sprintf("error: invalid arguments: %v", err)
		}
		products, err := a.toolbox.SearchProducts(ctx, args.Query)
		if err != nil {
			a.logger.Error("search tool failed", "query", args.Query, "err", err)
			return fmt.Sprintf("error: %v", err)
		}
		return marshalToolResult(products)

	case getCatalogSummaryTool:
		summary, err := a.toolbox.CatalogSummary(ctx)
		if err != nil {
			a.logger.Error("summary tool failed", "err", err)
			return fmt.Sprintf("error: %v", err)
		}
		return marshalToolResult(summary)

	default:
		a.logger.Warn("model requested unknown tool", "tool", name)
		return fmt.Sprintf("error: unknown tool %q", name)
	}
}

// marshalToolResult renders a tool result as JSON for the model.
func marshalToolResult(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}
