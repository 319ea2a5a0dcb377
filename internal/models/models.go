// Package models defines the domain models for the catalog.
// Products and categories live in the local database; click events are
// appended by the tracking endpoint and never mutated afterwards.
package models

import (
	"time"
)

// ProductType is the raw type stored on a product row. Values outside the
// known set are tolerated and classified as software downstream.
type ProductType string

const (
	ProductTypeAITools         ProductType = "ai_tools"
	ProductTypeSoftware        ProductType = "software"
	ProductTypeFreeTools       ProductType = "free_tools"
	ProductTypeDigitalProducts ProductType = "digital_products"

	// ProductTypePaidTools is a view selector for the category-counts
	// endpoint, not a storable classification: it matches any priced
	// product regardless of its stored type.
	ProductTypePaidTools ProductType = "paid_tools"
)

// RevenueType describes how a product monetizes.
type RevenueType string

const (
	RevenueTypeAffiliate RevenueType = "affiliate"
	RevenueTypePayment   RevenueType = "payment"
	RevenueTypeFree      RevenueType = "free"
	RevenueTypeMixed     RevenueType = "mixed"
)

// ClickType describes the kind of outbound click recorded for a product.
type ClickType string

const (
	ClickTypeAffiliate ClickType = "affiliate"
	ClickTypePayment   ClickType = "payment"
)

// Product is a catalog entry. DeletedAt is set if and only if IsDeleted is
// true; soft-deleted rows stay out of every listing until purged or restored.
type Product struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Slug            string      `json:"slug"`
	Description     string      `json:"description,omitempty"`
	ProductType     ProductType `json:"product_type"`
	CategoryID      *string     `json:"category_id,omitempty"`
	OriginalPrice   float64     `json:"original_price,omitempty"`
	DiscountedPrice float64     `json:"discounted_price,omitempty"`
	PurchasePrice   float64     `json:"purchase_price,omitempty"`
	RevenueType     RevenueType `json:"revenue_type"`
	AffiliateURL    string      `json:"affiliate_url,omitempty"`
	IsDeleted       bool        `json:"is_deleted"`
	DeletedAt       *time.Time  `json:"deleted_at,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// HasPrice reports whether any of the three price fields is positive.
func (p *Product) HasPrice() bool {
	return p.OriginalPrice > 0 || p.DiscountedPrice > 0 || p.PurchasePrice > 0
}

// Category is a catalog grouping. Top-level categories have a nil ParentID;
// only top-level categories participate in counting.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sort_order"`
	ParentID  *string   `json:"parent_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// VirtualCategoryID identifies the synthesized free-tools category. It is
// never persisted.
const VirtualCategoryID = "calculator"

// VirtualCalculatorCategory returns the synthetic category that stands in
// for the free-tools bucket, which has no real category rows.
func VirtualCalculatorCategory() Category {
	return Category{
		ID:   VirtualCategoryID,
		Name: "Calculator",
		Slug: "calculator",
	}
}

// ClickEvent is one recorded outbound click. ProductName is denormalized at
// record time so analytics never need a join back to a possibly-purged
// product.
type ClickEvent struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	ClickType   ClickType `json:"click_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// Settings is an arbitrary key-value payload stored per settings key. No
// schema is enforced; values round-trip through JSON.
type Settings map[string]any

// DateRange restricts a click-event query or aggregation to events with
// From <= created_at <= To, boundaries included.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the range, boundaries included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}
