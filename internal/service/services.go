package service

import (
	"log/slog"

	"github.com/tooldeck/tooldeck-api/internal/cache"
	"github.com/tooldeck/tooldeck-api/internal/config"
	"github.com/tooldeck/tooldeck-api/internal/repository"
)

// Services bundles all service implementations.
type Services struct {
	Catalog   *CatalogService
	Analytics *AnalyticsService
	Trash     *TrashService
}

// NewServices creates all services over the given repositories. All read
// services share one cache so invalidation sweeps everything at once.
func NewServices(cfg *config.Config, repos *repository.Repositories, logger *slog.Logger) *Services {
	shared := cache.New()

	return &Services{
		Catalog: NewCatalogService(repos.Product, repos.Category, shared, CatalogTTL{
			Stats:  cfg.CacheTTLStats,
			Counts: cfg.CacheTTLCounts,
		}, logger),
		Analytics: NewAnalyticsService(repos.Click, repos.Product, shared, cfg.CacheTTLAnalytics, logger),
		Trash:     NewTrashService(repos.Product, cfg.TrashRetention, logger),
	}
}
