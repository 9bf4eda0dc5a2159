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


package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/peeq/ai"
	"github.com/poiesic/peeq/catalog"
	"github.com/poiesic/peeq/search"
	"github.com/poiesic/peeq/storage"
)

// Server assembles the HTTP API from its handlers.
type Server struct {
	router *gin.Engine
	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets the logger used by the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		s.logger = logger
		return nil
	}
}

// NewServer wires the API routes for the given components.
// The assistant may be nil, in which case the chat endpoint reports 503.
func NewServer(assistant ai.Assistant, engine *search.Engine, cache *catalog.Cache, prompts storage.PromptRepository, dataDir string, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, search.ErrCatalogRequired
	}
	if cache == nil {
		return nil, catalog.ErrLoaderRequired
	}

	s := &Server{
		logger: slog.Default().With("component", "httpserver"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	NewChatHandler(assistant, s.logger).RegisterRoutes(api)
	NewProductHandler(engine, cache).RegisterRoutes(api)
	NewPromptHandler(prompts, s.logger).RegisterRoutes(api.Group("/admin"))
	NewFileHandler(dataDir, s.logger).RegisterRoutes(api.Group("/admin"))
	NewCatalogAdminHandler(cache, s.logger).RegisterRoutes(api.Group("/admin"))

	s.router = router
	return s, nil
}

// Handler returns the underlying http.Handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server on the given address and blocks until it stops.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting http server", "addr", addr)
	return s.router.Run(addr)
}
