package catalog

import (
	"context"
	"log/slog"
	"sync"

	"github.com/poiesic/peeq/core"
	"golang.org/x/sync/singleflight"
)

// Cache memoizes the loaded catalog for the process lifetime.
//
// The first caller triggers the load; concurrent cold callers are
// collapsed into that single in-flight load and all observe the same
// result. The cached product slice is treated as immutable after
// construction. Reset is the only invalidation hook; it affects loads
// started after it, so a load already in flight still completes and
// repopulates the cache.
type Cache struct {
	loader *Loader
	logger *slog.Logger

	// load performs the actual fill. It defaults to the loader's Load
	// and exists as a seam so tests can observe fill behavior.
	load func(ctx context.Context) ([]core.Product, []Diagnostic)

	group singleflight.Group

	mu       sync.RWMutex
	loaded   bool
	products []core.Product
	byId     map[string]core.Product
	diags    []Diagnostic
}

// CacheOption configures a Cache.
type CacheOption func(*Cache) error

// WithCacheLogger sets a custom logger.
// Default is slog.Default().
func WithCacheLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewCache creates a cache backed by the given loader.
func NewCache(loader *Loader, opts ...CacheOption) (*Cache, error) {
	if loader == nil {
		return nil, ErrLoaderRequired
	}

	c := &Cache{
		loader: loader,
		logger: slog.Default(),
		load:   loader.Load,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Products returns the memoized catalog, loading it on first use.
// An empty slice means no catalog is available, never an error.
func (c *Cache) Products(ctx context.Context) []core.Product {
	c.mu.RLock()
	if c.loaded {
		products := c.products
		c.mu.RUnlock()
		return products
	}
	c.mu.RUnlock()

	v, _, _ := c.group.Do("catalog", func() (any, error) {
		// A previous flight may have completed between the fast path
		// check and joining this one.
		c.mu.RLock()
		if c.loaded {
			products := c.products
			c.mu.RUnlock()
			return products, nil
		}
		c.mu.RUnlock()

		products, diags := c.load(ctx)
		byId := make(map[string]core.Product, len(products))
		for _, product := range products {
			byId[product.Id] = product
		}

		c.mu.Lock()
		c.products = products
		c.byId = byId
		c.diags = diags
		c.loaded = true
		c.mu.Unlock()

		return products, nil
	})

	return v.([]core.Product)
}

// ProductById looks up a product by its id. The second return value
// reports whether the product exists.
func (c *Cache) ProductById(ctx context.Context, id string) (core.Product, bool) {
	c.Products(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	product, ok := c.byId[id]
	return product, ok
}

// Diagnostics returns the failures recorded during the cached load.
func (c *Cache) Diagnostics(ctx context.Context) []Diagnostic {
	c.Products(ctx)

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.diags
}

// Summary derives catalog statistics from the cached product sequence.
// It is recomputed on each call, never stored.
func (c *Cache) Summary(ctx context.Context) *core.CatalogSummary {
	return Summarize(c.Products(ctx))
}

// Reset clears the cached catalog so the next access reloads from disk.
// This is the explicit, externally-triggered invalidation; nothing resets
// the cache automatically.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.loaded = false
	c.products = nil
	c.byId = nil
	c.diags = nil
	c.mu.Unlock()
	c.logger.Info("catalog cache reset")
}
