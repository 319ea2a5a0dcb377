// Package service contains the business logic layer. Services fetch through
// the repositories, delegate computation to the pure catalog core, and layer
// a TTL cache over the read operations.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tooldeck/tooldeck-api/internal/cache"
	"github.com/tooldeck/tooldeck-api/internal/catalog"
	"github.com/tooldeck/tooldeck-api/internal/models"
	"github.com/tooldeck/tooldeck-api/internal/repository"
)

// CatalogTTL holds the per-operation cache TTLs for catalog reads. A zero
// value disables caching for that operation.
type CatalogTTL struct {
	Stats  time.Duration
	Counts time.Duration
}

// CatalogService serves the derived catalog views: product stats and
// category counts. Every view is recomputed in full from the current
// repository snapshot; the cache only bounds how often that happens.
type CatalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      *cache.Cache
	ttl        CatalogTTL
	logger     *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	c *cache.Cache,
	ttl CatalogTTL,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		products:   products,
		categories: categories,
		cache:      c,
		ttl:        ttl,
		logger:     logger.With("component", "catalog"),
	}
}

// GetProductStats returns the per-bucket product counts. Repository
// failures propagate to the caller untouched.
func (s *CatalogService) GetProductStats(ctx context.Context) (catalog.ProductStats, error) {
	const key = "catalog:stats"
	if s.ttl.Stats > 0 {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(catalog.ProductStats), nil
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return catalog.ProductStats{}, err
	}

	stats := catalog.ComputeProductStats(products)
	if s.ttl.Stats > 0 {
		s.cache.Set(key, stats, s.ttl.Stats)
	}
	return stats, nil
}

// GetCategoryCounts returns per-category counts for one product-type view,
// zero-count categories filtered out (and the virtual calculator entry for
// free_tools).
func (s *CatalogService) GetCategoryCounts(ctx context.Context, productType models.ProductType) ([]catalog.CategoryCount, error) {
	key := "catalog:counts:" + string(productType)
	if s.ttl.Counts > 0 {
		if cached, ok := s.cache.Get(key); ok {
			return cached.([]catalog.CategoryCount), nil
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx, true)
	if err != nil {
		return nil, err
	}

	counts := catalog.CountsForType(productType, categories, products)
	if s.ttl.Counts > 0 {
		s.cache.Set(key, counts, s.ttl.Counts)
	}
	return counts, nil
}

// GetCategoryStats returns the global per-category counts: every top-level
// category, all products, no type predicate, zero counts kept.
func (s *CatalogService) GetCategoryStats(ctx context.Context) ([]catalog.CategoryCount, error) {
	const key = "catalog:category_stats"
	if s.ttl.Counts > 0 {
		if cached, ok := s.cache.Get(key); ok {
			return cached.([]catalog.CategoryCount), nil
		}
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx, true)
	if err != nil {
		return nil, err
	}

	counts := catalog.GlobalCategoryStats(categories, products)
	if s.ttl.Counts > 0 {
		s.cache.Set(key, counts, s.ttl.Counts)
	}
	return counts, nil
}

// InvalidateCache drops all cached catalog views. Called after mutations so
// the next read recomputes from the current snapshot.
func (s *CatalogService) InvalidateCache() {
	s.cache.Clear()
}
