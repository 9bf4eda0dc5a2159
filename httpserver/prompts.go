package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/peeq/core"
	"github.com/poiesic/peeq/storage"
)

// PromptHandler administers system prompt versions.
type PromptHandler struct {
	prompts storage.PromptRepository
	logger  *slog.Logger
}

func NewPromptHandler(prompts storage.PromptRepository, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{prompts: prompts, logger: logger}
}

func (h *PromptHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/prompts", h.list)                       // GET /api/admin/prompts
	rg.POST("/prompts", h.add)                       // POST /api/admin/prompts
	rg.PUT("/prompts/:version/activate", h.activate) // PUT /api/admin/prompts/:version/activate
}

func (h *PromptHandler) list(c *gin.Context) {
	records, err := h.prompts.ListPrompts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list prompts", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list prompts"})
		return
	}
	if records == nil {
		records = []*core.PromptRecord{}
	}
	c.JSON(http.StatusOK, records)
}

func (h *PromptHandler) add(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	record, err := h.prompts.AddPrompt(c.Request.Context(), req.Content)
	if err != nil {
		h.logger.Error("failed to save prompt", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save prompt"})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *PromptHandler) activate(c *gin.Context) {
	version, err := strconv.ParseInt(c.Param("version"), 10, 64)
	if err != nil || version < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid version"})
		return
	}

	record, err := h.prompts.ActivatePrompt(c.Request.Context(), version)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "version not found"})
			return
		}
		h.logger.Error("failed to activate prompt", "version", version, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to activate prompt"})
		return
	}
	c.JSON(http.StatusOK, record)
}
