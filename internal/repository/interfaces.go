// Package repository defines the data access layer. Each interface is the
// narrow collaborator contract the services depend on; the SQLite types in
// this package are the production implementations.
package repository

import (
	"context"
	"time"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

// ProductRepository defines methods for product data access.
type ProductRepository interface {
	// List returns all non-deleted products, newest first.
	List(ctx context.Context) ([]models.Product, error)
	// ListAll returns every product row, soft-deleted included.
	ListAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// SoftDelete marks a product deleted at the given time.
	SoftDelete(ctx context.Context, id string, at time.Time) error
	// Restore clears the deleted flag and timestamp.
	Restore(ctx context.Context, id string) error
	// ListExpiredTrash returns soft-deleted products whose deleted_at is
	// strictly before the cutoff.
	ListExpiredTrash(ctx context.Context, cutoff time.Time) ([]models.Product, error)
	// DeleteByIDs permanently removes the given rows in one statement.
	// Already-deleted ids are no-ops.
	DeleteByIDs(ctx context.Context, ids []string) error
}

// CategoryRepository defines methods for category data access.
type CategoryRepository interface {
	// List returns categories ordered by sort_order. With topLevelOnly it
	// returns only categories without a parent.
	List(ctx context.Context, topLevelOnly bool) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

// ClickEventRepository defines methods for click event data access.
// Events are append-only; nothing in this application mutates or deletes
// them.
type ClickEventRepository interface {
	// List returns click events ordered by created_at descending,
	// optionally restricted to an inclusive date range.
	List(ctx context.Context, dateRange *models.DateRange) ([]models.ClickEvent, error)
	Record(ctx context.Context, event *models.ClickEvent) error
}

// SettingsRepository stores opaque key-value settings payloads.
type SettingsRepository interface {
	// Get returns the payload for a key, or nil if the key is absent.
	Get(ctx context.Context, key string) (models.Settings, error)
	Put(ctx context.Context, key string, value models.Settings) error
}
