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


// Package peeq wires the shopping assistant's components together:
// the CSV catalog loader and cache, the keyword search engine, the
// versioned prompt store, and the tool-calling assistant.
package peeq

import (
	"context"
	"errors"
	"log/slog"

	"github.com/poiesic/peeq/ai"
	"github.com/poiesic/peeq/ai/openai"
	"github.com/poiesic/peeq/catalog"
	"github.com/poiesic/peeq/core"
	"github.com/poiesic/peeq/httpserver"
	"github.com/poiesic/peeq/search"
	"github.com/poiesic/peeq/storage"
	"github.com/poiesic/peeq/storage/badger"
)

// App aggregates the assistant's components for a single catalog directory.
type App struct {
	backend   *badger.Backend
	prompts   storage.PromptRepository
	loader    *catalog.Loader
	cache     *catalog.Cache
	engine    *search.Engine
	assistant ai.Assistant
	logger    *slog.Logger
}

// AppOption configures an App.
type AppOption func(*appOptions)

type appOptions struct {
	aiConfig      *ai.Config
	withAssistant bool
	extraSubdir   string
	poolSize      int
}

// WithAIConfig sets the model provider configuration and enables the
// assistant. Without it the app serves catalog and prompt operations only.
func WithAIConfig(config *ai.Config) AppOption {
	return func(o *appOptions) {
		o.aiConfig = config
		o.withAssistant = true
	}
}

// WithExtraSubdir overrides the secondary CSV directory name.
func WithExtraSubdir(name string) AppOption {
	return func(o *appOptions) {
		o.extraSubdir = name
	}
}

// WithPoolSize sets the loader's parse worker count.
func WithPoolSize(size int) AppOption {
	return func(o *appOptions) {
		o.poolSize = size
	}
}

// NewApp opens the prompt store at dbPath and builds the catalog pipeline
// for dataDir. An empty dbPath uses an in-memory store.
func NewApp(dataDir, dbPath string, opts ...AppOption) (*App, error) {
	options := &appOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(dbPath, dbPath == "")
	if err != nil {
		return nil, err
	}

	prompts, err := badger.NewPromptRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	loaderOpts := []catalog.LoaderOption{}
	if options.extraSubdir != "" {
		loaderOpts = append(loaderOpts, catalog.WithExtraSubdir(options.extraSubdir))
	}
	if options.poolSize > 0 {
		loaderOpts = append(loaderOpts, catalog.WithPoolSize(options.poolSize))
	}
	loader, err := catalog.NewLoader(dataDir, loaderOpts...)
	if err != nil {
		prompts.Close()
		backend.Close()
		return nil, err
	}

	cache, err := catalog.NewCache(loader)
	if err != nil {
		loader.Close()
		prompts.Close()
		backend.Close()
		return nil, err
	}

	engine, err := search.NewEngine(cache)
	if err != nil {
		loader.Close()
		prompts.Close()
		backend.Close()
		return nil, err
	}

	app := &App{
		backend: backend,
		prompts: prompts,
		loader:  loader,
		cache:   cache,
		engine:  engine,
		logger:  slog.Default(),
	}

	if options.withAssistant {
		assistant, err := openai.NewAssistant(options.aiConfig, &toolbox{app: app}, &promptSource{prompts: prompts})
		if err != nil {
			app.Close()
			return nil, err
		}
		app.assistant = assistant
	}

	return app, nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	if err := a.loader.Close(); err != nil {
		a.logger.Error("error closing catalog loader", "err", err)
	}
	if err := a.prompts.Close(); err != nil {
		a.logger.Error("error closing prompt repository", "err", err)
		return err
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Catalog returns the product cache.
func (a *App) Catalog() *catalog.Cache {
	return a.cache
}

// Search runs a keyword search over the catalog.
func (a *App) Search(ctx context.Context, query string) []core.Product {
	return a.engine.Search(ctx, query)
}

// Prompts returns the system prompt repository.
func (a *App) Prompts() storage.PromptRepository {
	return a.prompts
}

// Assistant returns the configured assistant, or nil when the app was
// built without one.
func (a *App) Assistant() ai.Assistant {
	return a.assistant
}

// NewServer builds the HTTP API around this app's components.
func (a *App) NewServer(opts ...httpserver.Option) (*httpserver.Server, error) {
	return httpserver.NewServer(a.assistant, a.engine, a.cache, a.prompts, a.loader.Dir(), opts...)
}

// toolbox implements ai.Toolbox over the app's catalog components.
type toolbox struct {
	app *App
}

var _ ai.Toolbox = (*toolbox)(nil)

func (t *toolbox) SearchProducts(ctx context.Context, query string) ([]core.Product, error) {
	return t.app.engine.Search(ctx, query), nil
}

func (t *toolbox) CatalogSummary(ctx context.Context) (*core.CatalogSummary, error) {
	return t.app.cache.Summary(ctx), nil
}

// promptSource adapts the prompt repository to ai.PromptSource.
// An empty store is not an error; the assistant falls back to its
// built-in default prompt.
type promptSource struct {
	prompts storage.PromptRepository
}

var _ ai.PromptSource = (*promptSource)(nil)

func (p *promptSource) ActiveSystemPrompt(ctx context.Context) (string, error) {
	record, err := p.prompts.ActivePrompt(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return openai.DefaultSystemPrompt, nil
		}
		return "", err
	}
	return record.Content, nil
}
