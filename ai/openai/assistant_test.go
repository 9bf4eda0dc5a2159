package openai

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/poiesic/peeq/ai"
	"github.com/poiesic/peeq/ai/mock"
	"github.com/poiesic/peeq/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// scriptedModel replays a fixed sequence of responses and records the
// message history it was called with.
type scriptedModel struct {
	responses []*llms.ContentResponse
	calls     int
	histories [][]llms.MessageContent
}

var _ llms.Model = (*scriptedModel)(nil)

func (s *scriptedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	s.histories = append(s.histories, messages)
	if s.calls >= len(s.responses) {
		return s.responses[len(s.responses)-1], nil
	}
	response := s.responses[s.calls]
	s.calls++
	return response, nil
}

func (s *scriptedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func textResponse(content string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: content}},
	}
}

func toolCallResponse(id, name, args string) *llms.ContentResponse {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			ToolCalls: []llms.ToolCall{{
				ID:   id,
				Type: "function",
				FunctionCall: &llms.FunctionCall{
					Name:      name,
					Arguments: args,
				},
			}},
		}},
	}
}

type staticPromptSource struct {
	prompt string
	err    error
}

func (s *staticPromptSource) ActiveSystemPrompt(ctx context.Context) (string, error) {
	return s.prompt, s.err
}

func newTestAssistant(model llms.Model, toolbox ai.Toolbox, prompts ai.PromptSource) *Assistant {
	return &Assistant{
		client:       model,
		toolbox:      toolbox,
		prompts:      prompts,
		maxToolSteps: 5,
		logger:       slog.Default(),
	}
}

func userMessage(content string) []core.ChatMessage {
	return []core.ChatMessage{{Role: core.RoleUser, Content: content}}
}

func TestNewAssistant_RequiresToolbox(t *testing.T) {
	_, err := NewAssistant(ai.DefaultConfig(), nil, nil)
	assert.ErrorIs(t, err, ai.ErrToolboxRequired)
}

func TestNewAssistant_ValidatesConfig(t *testing.T) {
	cfg := ai.DefaultConfig()
	cfg.Model = ""
	_, err := NewAssistant(cfg, mock.NewMockToolbox(), nil)
	assert.Error(t, err)
}

func TestReply_DirectAnswer(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		textResponse("Hello! What are you shopping for today?"),
	}}
	assistant := newTestAssistant(model, mock.NewMockToolbox(), nil)

	reply, err := assistant.Reply(context.Background(), userMessage("hi"))
	require.NoError(t, err)
	assert.Equal(t, "Hello! What are you shopping for today?", reply)
	assert.Equal(t, 1, model.calls)
}

func TestReply_ToolCallRoundTrip(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "searchProducts", `{"query":"tee"}`),
		textResponse("I found the Mock Tee for you."),
	}}
	toolbox := mock.NewMockToolbox()
	assistant := newTestAssistant(model, toolbox, nil)

	reply, err := assistant.Reply(context.Background(), userMessage("show me a tee"))
	require.NoError(t, err)
	assert.Equal(t, "I found the Mock Tee for you.", reply)
	assert.Equal(t, 1, toolbox.SearchCallCount())

	// Second round-trip must carry the tool call and its response.
	require.Len(t, model.histories, 2)
	second := model.histories[1]
	require.GreaterOrEqual(t, len(second), 4)
	assert.Equal(t, llms.ChatMessageTypeAI, second[len(second)-2].Role)
	assert.Equal(t, llms.ChatMessageTypeTool, second[len(second)-1].Role)

	toolPart, ok := second[len(second)-1].Parts[0].(llms.ToolCallResponse)
	require.True(t, ok)
	assert.Equal(t, "call-1", toolPart.ToolCallID)
	assert.Contains(t, toolPart.Content, "Mock Tee")
}

func TestReply_SummaryTool(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "getCatalogSummary", `{}`),
		textResponse("We carry 2 products across Snitch and FUAARK."),
	}}
	toolbox := mock.NewMockToolbox()
	assistant := newTestAssistant(model, toolbox, nil)

	reply, err := assistant.Reply(context.Background(), userMessage("what do you sell?"))
	require.NoError(t, err)
	assert.Contains(t, reply, "2 products")
	assert.Equal(t, 1, toolbox.SummaryCallCount())
}

func TestReply_ToolErrorIsReportedToModel(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "searchProducts", `{"query":"tee"}`),
		textResponse("Sorry, the catalog is unavailable right now."),
	}}
	toolbox := mock.NewMockToolbox()
	toolbox.SearchProductsFunc = func(ctx context.Context, query string) ([]core.Product, error) {
		return nil, errors.New("catalog offline")
	}
	assistant := newTestAssistant(model, toolbox, nil)

	reply, err := assistant.Reply(context.Background(), userMessage("show me a tee"))
	require.NoError(t, err)
	assert.Contains(t, reply, "unavailable")

	toolPart := model.histories[1][len(model.histories[1])-1].Parts[0].(llms.ToolCallResponse)
	assert.Contains(t, toolPart.Content, "catalog offline")
}

func TestReply_UnknownToolIsReportedToModel(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "deleteCatalog", `{}`),
		textResponse("I can only search the catalog."),
	}}
	assistant := newTestAssistant(model, mock.NewMockToolbox(), nil)

	reply, err := assistant.Reply(context.Background(), userMessage("delete everything"))
	require.NoError(t, err)
	assert.Equal(t, "I can only search the catalog.", reply)

	toolPart := model.histories[1][len(model.histories[1])-1].Parts[0].(llms.ToolCallResponse)
	assert.Contains(t, toolPart.Content, "unknown tool")
}

func TestReply_StepLimit(t *testing.T) {
	// The model keeps asking for tools and never produces text.
	model := &scriptedModel{responses: []*llms.ContentResponse{
		toolCallResponse("call-1", "searchProducts", `{"query":"tee"}`),
	}}
	assistant := newTestAssistant(model, mock.NewMockToolbox(), nil)
	assistant.maxToolSteps = 3

	_, err := assistant.Reply(context.Background(), userMessage("show me a tee"))
	assert.ErrorIs(t, err, ai.ErrNoResponse)
	assert.Len(t, model.histories, 3)
}

func TestReply_ValidatesConversation(t *testing.T) {
	assistant := newTestAssistant(&scriptedModel{responses: []*llms.ContentResponse{
		textResponse("unused"),
	}}, mock.NewMockToolbox(), nil)
	ctx := context.Background()

	_, err := assistant.Reply(ctx, nil)
	assert.ErrorIs(t, err, ai.ErrEmptyConversation)

	_, err = assistant.Reply(ctx, []core.ChatMessage{{Role: core.RoleAssistant, Content: "hello"}})
	assert.ErrorIs(t, err, ai.ErrLastMessageNotUser)

	_, err = assistant.Reply(ctx, []core.ChatMessage{{Role: core.RoleUser, Content: ""}})
	assert.ErrorIs(t, err, core.ErrInvalidChatMessage)
}

func TestReply_UsesActivePrompt(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		textResponse("ok"),
	}}
	prompts := &staticPromptSource{prompt: "You only speak in haiku."}
	assistant := newTestAssistant(model, mock.NewMockToolbox(), prompts)

	_, err := assistant.Reply(context.Background(), userMessage("hi"))
	require.NoError(t, err)

	system := model.histories[0][0]
	assert.Equal(t, llms.ChatMessageTypeSystem, system.Role)
	text, ok := system.Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Equal(t, "You only speak in haiku.", text.Text)
}

func TestReply_FallsBackToDefaultPrompt(t *testing.T) {
	model := &scriptedModel{responses: []*llms.ContentResponse{
		textResponse("ok"),
	}}
	prompts := &staticPromptSource{err: errors.New("store unavailable")}
	assistant := newTestAssistant(model, mock.NewMockToolbox(), prompts)

	_, err := assistant.Reply(context.Background(), userMessage("hi"))
	require.NoError(t, err)

	text := model.histories[0][0].Parts[0].(llms.TextContent)
	assert.Equal(t, DefaultSystemPrompt, text.Text)
}
