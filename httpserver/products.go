package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/peeq/catalog"
	"github.com/poiesic/peeq/search"
)

// ProductHandler serves catalog queries.
type ProductHandler struct {
	engine *search.Engine
	cache  *catalog.Cache
}

func NewProductHandler(engine *search.Engine, cache *catalog.Cache) *ProductHandler {
	return &ProductHandler{engine: engine, cache: cache}
}

func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products/search", h.search)          // GET /api/products/search?q=
	rg.GET("/products/:id", h.getById)            // GET /api/products/:id
	rg.GET("/catalog/summary", h.summary)         // GET /api/catalog/summary
	rg.GET("/catalog/diagnostics", h.diagnostics) // GET /api/catalog/diagnostics
}

func (h *ProductHandler) search(c *gin.Context) {
	results := h.engine.Search(c.Request.Context(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{
		"query":   c.Query("q"),
		"count":   len(results),
		"results": results,
	})
}

func (h *ProductHandler) getById(c *gin.Context) {
	product, ok := h.cache.ProductById(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.cache.Summary(c.Request.Context()))
}

func (h *ProductHandler) diagnostics(c *gin.Context) {
	diags := h.cache.Diagnostics(c.Request.Context())
	if diags == nil {
		diags = []catalog.Diagnostic{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(diags),
		"diagnostics": diags,
	})
}
