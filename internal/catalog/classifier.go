// Package catalog implements the pure classification and aggregation core.
// Nothing in this package touches the repository; every function is a plain
// computation over slices the caller already fetched, so results are fully
// determined by their inputs and safe to recompute at any time.
package catalog

import (
	"github.com/tooldeck/tooldeck-api/internal/models"
)

// Bucket is a mutually exclusive classification outcome for a product.
type Bucket string

const (
	BucketAITools   Bucket = "ai_tools"
	BucketSoftware  Bucket = "software"
	BucketFreeTools Bucket = "free_tools"
)

// Classification is the outcome of classifying a single product.
// Paid reports the raw paid predicate (revenue type or any positive price);
// the free-tools exclusion from the paid_tools counter is applied during
// aggregation, not here.
type Classification struct {
	Bucket Bucket
	Paid   bool
}

// Classify assigns a product to exactly one bucket and resolves its paid
// status. free_tools is terminal and short-circuits every other rule.
// Unrecognized or missing types fall back to the software bucket; that is
// deliberate policy, not an error.
func Classify(p *models.Product) Classification {
	var bucket Bucket
	switch p.ProductType {
	case models.ProductTypeFreeTools:
		bucket = BucketFreeTools
	case models.ProductTypeAITools:
		bucket = BucketAITools
	case models.ProductTypeSoftware, models.ProductTypeDigitalProducts:
		bucket = BucketSoftware
	default:
		bucket = BucketSoftware
	}

	paid := p.RevenueType == models.RevenueTypePayment ||
		p.RevenueType == models.RevenueTypeAffiliate ||
		p.HasPrice()

	return Classification{Bucket: bucket, Paid: paid}
}

// ProductStats holds the derived per-bucket counts. It is recomputed in full
// on every request and never persisted.
type ProductStats struct {
	AITools   int `json:"ai_tools"`
	Software  int `json:"software"`
	FreeTools int `json:"free_tools"`
	PaidTools int `json:"paid_tools"`
	Total     int `json:"total"`
}

// ComputeProductStats classifies every product and tallies the buckets.
// Each product increments exactly one of the three exclusive counters plus
// the total; paid_tools is an independent overlay that never includes the
// free_tools bucket, priced or not.
func ComputeProductStats(products []models.Product) ProductStats {
	var stats ProductStats
	for i := range products {
		c := Classify(&products[i])
		switch c.Bucket {
		case BucketAITools:
			stats.AITools++
		case BucketSoftware:
			stats.Software++
		case BucketFreeTools:
			stats.FreeTools++
		}
		if c.Paid && c.Bucket != BucketFreeTools {
			stats.PaidTools++
		}
		stats.Total++
	}
	return stats
}
