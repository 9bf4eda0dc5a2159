package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/peeq/ai"
	"github.com/poiesic/peeq/core"
)

// ChatHandler serves the conversation endpoint.
type ChatHandler struct {
	assistant ai.Assistant
	logger    *slog.Logger
}

func NewChatHandler(assistant ai.Assistant, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{assistant: assistant, logger: logger}
}

func (h *ChatHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat) // POST /api/chat
}

// chatMessage is the wire form of a conversation turn.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

func (h *ChatHandler) chat(c *gin.Context) {
	if h.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant not configured"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	messages := make([]core.ChatMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		var role core.Role
		switch msg.Role {
		case "user":
			role = core.RoleUser
		case "assistant":
			role = core.RoleAssistant
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role: " + msg.Role})
			return
		}
		message := core.ChatMessage{Role: role, Content: msg.Content}
		if err := core.ValidateChatMessage(&message); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		messages = append(messages, message)
	}
	if messages[len(messages)-1].Role != core.RoleUser {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversation must end with a user message"})
		return
	}

	reply, err := h.assistant.Reply(c.Request.Context(), messages)
	if err != nil {
		h.logger.Error("assistant reply failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply": chatMessage{Role: "assistant", Content: reply},
	})
}
