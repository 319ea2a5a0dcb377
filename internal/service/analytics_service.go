package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tooldeck/tooldeck-api/internal/cache"
	"github.com/tooldeck/tooldeck-api/internal/catalog"
	"github.com/tooldeck/tooldeck-api/internal/models"
	"github.com/tooldeck/tooldeck-api/internal/repository"
)

// AnalyticsService aggregates click events into revenue analytics and
// records new clicks from the tracking endpoint.
type AnalyticsService struct {
	clicks   repository.ClickEventRepository
	products repository.ProductRepository
	cache    *cache.Cache
	ttl      time.Duration
	logger   *slog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(
	clicks repository.ClickEventRepository,
	products repository.ProductRepository,
	c *cache.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		clicks:   clicks,
		products: products,
		cache:    c,
		ttl:      ttl,
		logger:   logger.With("component", "analytics"),
	}
}

// GetRevenueAnalytics aggregates the click stream, optionally restricted to
// an inclusive date range. Only the unrestricted view is cached; ranged
// queries are cheap enough to recompute and too varied to key usefully.
func (s *AnalyticsService) GetRevenueAnalytics(ctx context.Context, dateRange *models.DateRange) (catalog.RevenueAnalytics, error) {
	const key = "analytics:revenue"
	useCache := dateRange == nil && s.ttl > 0
	if useCache {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(catalog.RevenueAnalytics), nil
		}
	}

	events, err := s.clicks.List(ctx, dateRange)
	if err != nil {
		return catalog.RevenueAnalytics{}, err
	}

	// The repository already restricted the range; the aggregator filters
	// again so it stays correct standalone.
	analytics := catalog.AggregateClicks(events, dateRange)
	if useCache {
		s.cache.Set(key, analytics, s.ttl)
	}
	return analytics, nil
}

// RecordClick appends one click event, denormalizing the product name at
// record time. The product reference is not validated for existence: clicks
// may legitimately outlive their product.
func (s *AnalyticsService) RecordClick(ctx context.Context, productID string, clickType models.ClickType) (*models.ClickEvent, error) {
	if clickType != models.ClickTypeAffiliate && clickType != models.ClickTypePayment {
		return nil, fmt.Errorf("unsupported click type %q", clickType)
	}

	event := &models.ClickEvent{
		ProductID: productID,
		ClickType: clickType,
	}
	if product, err := s.products.GetByID(ctx, productID); err == nil && product != nil {
		event.ProductName = product.Name
	}

	if err := s.clicks.Record(ctx, event); err != nil {
		return nil, err
	}

	s.cache.Delete("analytics:revenue")
	return event, nil
}
