package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/peeq/catalog"
)

// CatalogAdminHandler triggers explicit catalog maintenance operations.
type CatalogAdminHandler struct {
	cache  *catalog.Cache
	logger *slog.Logger
}

func NewCatalogAdminHandler(cache *catalog.Cache, logger *slog.Logger) *CatalogAdminHandler {
	return &CatalogAdminHandler{cache: cache, logger: logger}
}

func (h *CatalogAdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/catalog/reload", h.reload) // POST /api/admin/catalog/reload
}

func (h *CatalogAdminHandler) reload(c *gin.Context) {
	h.cache.Reset()
	summary := h.cache.Summary(c.Request.Context())

	h.logger.Info("catalog reloaded",
		"totalProducts", summary.TotalProducts,
		"totalFiles", summary.TotalFiles)

	c.JSON(http.StatusOK, gin.H{
		"message": "catalog reloaded",
		"summary": summary,
	})
}
