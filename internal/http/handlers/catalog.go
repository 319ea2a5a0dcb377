package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tooldeck/tooldeck-api/internal/catalog"
	"github.com/tooldeck/tooldeck-api/internal/models"
)

// CatalogReader is the catalog service surface the handlers need.
type CatalogReader interface {
	GetProductStats(ctx context.Context) (catalog.ProductStats, error)
	GetCategoryCounts(ctx context.Context, productType models.ProductType) ([]catalog.CategoryCount, error)
	GetCategoryStats(ctx context.Context) ([]catalog.CategoryCount, error)
}

// CatalogHandler serves the derived catalog views.
type CatalogHandler struct {
	catalog CatalogReader
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(c CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// GetProductStatsOutput is the response for the product stats endpoint.
type GetProductStatsOutput struct {
	Body catalog.ProductStats
}

// GetProductStats returns the per-bucket product counts shown on the
// storefront navigation.
func (h *CatalogHandler) GetProductStats(ctx context.Context, _ *struct{}) (*GetProductStatsOutput, error) {
	stats, err := h.catalog.GetProductStats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to compute product stats: " + err.Error())
	}
	return &GetProductStatsOutput{Body: stats}, nil
}

// GetCategoryCountsInput selects one product-type view.
type GetCategoryCountsInput struct {
	ProductType string `path:"productType" enum:"ai_tools,software,free_tools,paid_tools" doc:"Product type view"`
}

// GetCategoryCountsOutput is the response for the per-type category listing.
type GetCategoryCountsOutput struct {
	Body struct {
		Categories []catalog.CategoryCount `json:"categories"`
	}
}

// GetCategoryCounts returns the non-empty categories for one product-type
// view. The free_tools view collapses to the single virtual calculator
// entry.
func (h *CatalogHandler) GetCategoryCounts(ctx context.Context, input *GetCategoryCountsInput) (*GetCategoryCountsOutput, error) {
	counts, err := h.catalog.GetCategoryCounts(ctx, models.ProductType(input.ProductType))
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to count categories: " + err.Error())
	}
	out := &GetCategoryCountsOutput{}
	out.Body.Categories = counts
	return out, nil
}

// GetCategoryStatsOutput is the response for the global category stats
// endpoint.
type GetCategoryStatsOutput struct {
	Body struct {
		Categories []catalog.CategoryCount `json:"categories"`
	}
}

// GetCategoryStats returns counts for every top-level category across the
// whole catalog, zero counts included.
func (h *CatalogHandler) GetCategoryStats(ctx context.Context, _ *struct{}) (*GetCategoryStatsOutput, error) {
	counts, err := h.catalog.GetCategoryStats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to compute category stats: " + err.Error())
	}
	out := &GetCategoryStatsOutput{}
	out.Body.Categories = counts
	return out, nil
}
