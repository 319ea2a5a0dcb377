package catalog

import (
	"testing"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

func TestClassify_BucketResolution(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    Bucket
	}{
		{"free tools is terminal", models.Product{ProductType: models.ProductTypeFreeTools}, BucketFreeTools},
		{"free tools beats pricing", models.Product{ProductType: models.ProductTypeFreeTools, PurchasePrice: 99}, BucketFreeTools},
		{"ai tools", models.Product{ProductType: models.ProductTypeAITools}, BucketAITools},
		{"software", models.Product{ProductType: models.ProductTypeSoftware}, BucketSoftware},
		{"digital products fold into software", models.Product{ProductType: models.ProductTypeDigitalProducts}, BucketSoftware},
		{"unknown value defaults to software", models.Product{ProductType: "unknown_value"}, BucketSoftware},
		{"missing type defaults to software", models.Product{}, BucketSoftware},
		{"paid_tools selector is not a storable bucket", models.Product{ProductType: models.ProductTypePaidTools}, BucketSoftware},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.product)
			if got.Bucket != tt.want {
				t.Errorf("Classify(%q).Bucket = %q, want %q", tt.product.ProductType, got.Bucket, tt.want)
			}
		})
	}
}

func TestClassify_PaidResolution(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
		want    bool
	}{
		{"payment revenue", models.Product{RevenueType: models.RevenueTypePayment}, true},
		{"affiliate revenue", models.Product{RevenueType: models.RevenueTypeAffiliate}, true},
		{"original price", models.Product{RevenueType: models.RevenueTypeFree, OriginalPrice: 10}, true},
		{"discounted price", models.Product{RevenueType: models.RevenueTypeFree, DiscountedPrice: 5}, true},
		{"purchase price", models.Product{RevenueType: models.RevenueTypeFree, PurchasePrice: 1}, true},
		{"free and unpriced", models.Product{RevenueType: models.RevenueTypeFree}, false},
		{"mixed and unpriced", models.Product{RevenueType: models.RevenueTypeMixed}, false},
		{"zero prices are not paid", models.Product{OriginalPrice: 0, DiscountedPrice: 0, PurchasePrice: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(&tt.product)
			if got.Paid != tt.want {
				t.Errorf("Classify().Paid = %v, want %v", got.Paid, tt.want)
			}
		})
	}
}

func TestComputeProductStats_ExampleScenario(t *testing.T) {
	products := []models.Product{
		{ProductType: models.ProductTypeFreeTools, PurchasePrice: 0},
		{ProductType: models.ProductTypeAITools, RevenueType: models.RevenueTypeAffiliate},
		{ProductType: models.ProductTypeSoftware, OriginalPrice: 50},
	}

	stats := ComputeProductStats(products)

	want := ProductStats{AITools: 1, Software: 1, FreeTools: 1, PaidTools: 2, Total: 3}
	if stats != want {
		t.Errorf("ComputeProductStats() = %+v, want %+v", stats, want)
	}
}

func TestComputeProductStats_ExclusivityInvariant(t *testing.T) {
	// Every bucket must receive exactly one increment per product, so the
	// three exclusive counters always sum to the total.
	products := []models.Product{
		{ProductType: models.ProductTypeAITools},
		{ProductType: models.ProductTypeAITools, PurchasePrice: 20},
		{ProductType: models.ProductTypeSoftware},
		{ProductType: models.ProductTypeDigitalProducts, RevenueType: models.RevenueTypePayment},
		{ProductType: models.ProductTypeFreeTools},
		{ProductType: "garbage"},
		{},
	}

	stats := ComputeProductStats(products)

	if got := stats.AITools + stats.Software + stats.FreeTools; got != stats.Total {
		t.Errorf("bucket sum = %d, total = %d; buckets must partition the set", got, stats.Total)
	}
	if stats.Total != len(products) {
		t.Errorf("total = %d, want %d", stats.Total, len(products))
	}
}

func TestComputeProductStats_PaidIndependence(t *testing.T) {
	// A priced free_tools product still lands in free_tools, never paid_tools.
	products := []models.Product{
		{ProductType: models.ProductTypeFreeTools, PurchasePrice: 49.99},
		{ProductType: models.ProductTypeFreeTools, RevenueType: models.RevenueTypePayment},
	}

	stats := ComputeProductStats(products)

	if stats.FreeTools != 2 {
		t.Errorf("free_tools = %d, want 2", stats.FreeTools)
	}
	if stats.PaidTools != 0 {
		t.Errorf("paid_tools = %d, want 0: free tools never count toward paid", stats.PaidTools)
	}
}

func TestComputeProductStats_Empty(t *testing.T) {
	stats := ComputeProductStats(nil)
	if stats != (ProductStats{}) {
		t.Errorf("ComputeProductStats(nil) = %+v, want zero value", stats)
	}
}

func TestComputeProductStats_MatchesSingleClassifications(t *testing.T) {
	// The aggregate must equal the sum of per-item classifications.
	products := []models.Product{
		{ProductType: models.ProductTypeAITools, OriginalPrice: 5},
		{ProductType: models.ProductTypeSoftware},
		{ProductType: models.ProductTypeFreeTools, DiscountedPrice: 3},
		{ProductType: models.ProductTypeDigitalProducts},
		{ProductType: "other", RevenueType: models.RevenueTypeAffiliate},
	}

	var want ProductStats
	for i := range products {
		c := Classify(&products[i])
		switch c.Bucket {
		case BucketAITools:
			want.AITools++
		case BucketSoftware:
			want.Software++
		case BucketFreeTools:
			want.FreeTools++
		}
		if c.Paid && c.Bucket != BucketFreeTools {
			want.PaidTools++
		}
		want.Total++
	}

	if got := ComputeProductStats(products); got != want {
		t.Errorf("ComputeProductStats() = %+v, want %+v", got, want)
	}
}
