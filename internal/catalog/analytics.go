package catalog

import (
	"sort"
	"time"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

// RecentClicksLimit bounds the recent-activity view.
const RecentClicksLimit = 50

// ProductClicks is the per-product rollup of click counts.
type ProductClicks struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	AffiliateClicks int    `json:"affiliate_clicks"`
	PaymentClicks   int    `json:"payment_clicks"`
	TotalClicks     int    `json:"total_clicks"`
}

// RecentClick is one entry of the bounded recent-activity view.
type RecentClick struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	ClickType models.ClickType `json:"click_type"`
	CreatedAt time.Time        `json:"created_at"`
	Product   string           `json:"product"`
}

// RevenueAnalytics is the full derived analytics view over a click set.
type RevenueAnalytics struct {
	TotalClicks     int             `json:"totalClicks"`
	AffiliateClicks int             `json:"affiliateClicks"`
	PaymentClicks   int             `json:"paymentClicks"`
	ClicksByProduct []ProductClicks `json:"clicksByProduct"`
	RecentClicks    []RecentClick   `json:"recentClicks"`
}

// AggregateClicks reduces a click event stream to revenue analytics.
// A nil dateRange aggregates the full set. Events with an unknown click type
// count toward totals but toward neither named bucket. The per-product
// rollup is ordered by total clicks descending with encounter order breaking
// ties; recent clicks are sorted descending by created_at here even though
// the repository already delivers them that way, so the aggregation is
// correct standalone.
func AggregateClicks(events []models.ClickEvent, dateRange *models.DateRange) RevenueAnalytics {
	if dateRange != nil {
		filtered := make([]models.ClickEvent, 0, len(events))
		for _, e := range events {
			if dateRange.Contains(e.CreatedAt) {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	analytics := RevenueAnalytics{
		TotalClicks:     len(events),
		ClicksByProduct: []ProductClicks{},
		RecentClicks:    []RecentClick{},
	}

	byProduct := make(map[string]int) // product id -> index into ClicksByProduct
	for _, e := range events {
		switch e.ClickType {
		case models.ClickTypeAffiliate:
			analytics.AffiliateClicks++
		case models.ClickTypePayment:
			analytics.PaymentClicks++
		}

		idx, ok := byProduct[e.ProductID]
		if !ok {
			name := e.ProductName
			if name == "" {
				name = "Unknown"
			}
			idx = len(analytics.ClicksByProduct)
			byProduct[e.ProductID] = idx
			analytics.ClicksByProduct = append(analytics.ClicksByProduct, ProductClicks{
				ProductID:   e.ProductID,
				ProductName: name,
			})
		}
		group := &analytics.ClicksByProduct[idx]
		switch e.ClickType {
		case models.ClickTypeAffiliate:
			group.AffiliateClicks++
		case models.ClickTypePayment:
			group.PaymentClicks++
		}
		group.TotalClicks++
	}

	sort.SliceStable(analytics.ClicksByProduct, func(i, j int) bool {
		return analytics.ClicksByProduct[i].TotalClicks > analytics.ClicksByProduct[j].TotalClicks
	})

	recent := make([]models.ClickEvent, len(events))
	copy(recent, events)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > RecentClicksLimit {
		recent = recent[:RecentClicksLimit]
	}
	for _, e := range recent {
		name := e.ProductName
		if name == "" {
			name = "Unknown"
		}
		analytics.RecentClicks = append(analytics.RecentClicks, RecentClick{
			ID:        e.ID,
			ProductID: e.ProductID,
			ClickType: e.ClickType,
			CreatedAt: e.CreatedAt,
			Product:   name,
		})
	}

	return analytics
}
