package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/tooldeck/tooldeck-api/internal/catalog"
	"github.com/tooldeck/tooldeck-api/internal/models"
)

// AnalyticsReader is the analytics service surface the handlers need.
type AnalyticsReader interface {
	GetRevenueAnalytics(ctx context.Context, dateRange *models.DateRange) (catalog.RevenueAnalytics, error)
	RecordClick(ctx context.Context, productID string, clickType models.ClickType) (*models.ClickEvent, error)
}

// AnalyticsHandler serves click aggregation and recording.
type AnalyticsHandler struct {
	analytics AnalyticsReader
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(a AnalyticsReader) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: a}
}

// GetRevenueInput optionally restricts the aggregation window. Both bounds
// must be given together; they are inclusive RFC 3339 timestamps.
type GetRevenueInput struct {
	From time.Time `query:"from" required:"false" doc:"Inclusive window start (RFC 3339)"`
	To   time.Time `query:"to" required:"false" doc:"Inclusive window end (RFC 3339)"`
}

// GetRevenueOutput is the revenue analytics response.
type GetRevenueOutput struct {
	Body catalog.RevenueAnalytics
}

// GetRevenue aggregates the click stream into the dashboard analytics view.
func (h *AnalyticsHandler) GetRevenue(ctx context.Context, input *GetRevenueInput) (*GetRevenueOutput, error) {
	var dateRange *models.DateRange
	switch {
	case input.From.IsZero() && input.To.IsZero():
		// Unrestricted.
	case input.From.IsZero() || input.To.IsZero():
		return nil, huma.Error400BadRequest("from and to must be provided together")
	default:
		if input.To.Before(input.From) {
			return nil, huma.Error400BadRequest("to must not be before from")
		}
		dateRange = &models.DateRange{From: input.From, To: input.To}
	}

	analytics, err := h.analytics.GetRevenueAnalytics(ctx, dateRange)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to aggregate clicks: " + err.Error())
	}
	return &GetRevenueOutput{Body: analytics}, nil
}

// RecordClickInput is one click from the storefront tracker.
type RecordClickInput struct {
	Body struct {
		ProductID string `json:"product_id" minLength:"1" doc:"Clicked product ID"`
		ClickType string `json:"click_type" enum:"affiliate,payment" doc:"Click kind"`
	}
}

// RecordClickOutput echoes the stored event.
type RecordClickOutput struct {
	Body struct {
		Click models.ClickEvent `json:"click"`
	}
}

// RecordClick stores one click event.
func (h *AnalyticsHandler) RecordClick(ctx context.Context, input *RecordClickInput) (*RecordClickOutput, error) {
	event, err := h.analytics.RecordClick(ctx, input.Body.ProductID, models.ClickType(input.Body.ClickType))
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to record click: " + err.Error())
	}
	out := &RecordClickOutput{}
	out.Body.Click = *event
	return out, nil
}
