package catalog

import (
	"github.com/tooldeck/tooldeck-api/internal/models"
)

// CategoryCount pairs a category with the number of matching products.
type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

// CountsForType counts products per top-level category for one product-type
// view, dropping categories with no matches.
//
// The free_tools view bypasses the category table entirely and always yields
// a single synthetic "Calculator" entry whose count is the free-tools bucket
// size. The paid_tools view matches any priced product regardless of its
// stored type; the other views match on the stored type.
func CountsForType(productType models.ProductType, categories []models.Category, products []models.Product) []CategoryCount {
	if productType == models.ProductTypeFreeTools {
		count := 0
		for i := range products {
			if Classify(&products[i]).Bucket == BucketFreeTools {
				count++
			}
		}
		return []CategoryCount{{Category: models.VirtualCalculatorCategory(), Count: count}}
	}

	match := typePredicate(productType)
	counts := make([]CategoryCount, 0, len(categories))
	for _, cat := range categories {
		if cat.ParentID != nil {
			continue
		}
		count := 0
		for i := range products {
			p := &products[i]
			if p.CategoryID != nil && *p.CategoryID == cat.ID && match(p) {
				count++
			}
		}
		if count > 0 {
			counts = append(counts, CategoryCount{Category: cat, Count: count})
		}
	}
	return counts
}

// typePredicate returns the per-product filter for one category-counts view.
func typePredicate(productType models.ProductType) func(*models.Product) bool {
	switch productType {
	case models.ProductTypePaidTools:
		// Cross-bucket: any price qualifies, the stored type is ignored.
		return func(p *models.Product) bool { return p.HasPrice() }
	case models.ProductTypeAITools:
		return func(p *models.Product) bool { return p.ProductType == models.ProductTypeAITools }
	default:
		// software view also covers digital_products
		return func(p *models.Product) bool {
			return p.ProductType == models.ProductTypeSoftware ||
				p.ProductType == models.ProductTypeDigitalProducts
		}
	}
}

// GlobalCategoryStats counts all products per top-level category with no
// type or price predicate and keeps zero-count categories. It serves a
// different consumer than CountsForType and the two must not be conflated:
// their zero handling and matching rules differ.
func GlobalCategoryStats(categories []models.Category, products []models.Product) []CategoryCount {
	counts := make([]CategoryCount, 0, len(categories))
	for _, cat := range categories {
		if cat.ParentID != nil {
			continue
		}
		count := 0
		for i := range products {
			if products[i].CategoryID != nil && *products[i].CategoryID == cat.ID {
				count++
			}
		}
		counts = append(counts, CategoryCount{Category: cat, Count: count})
	}
	return counts
}
