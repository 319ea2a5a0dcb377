package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockProductRepository is an in-memory ProductRepository. Setting failWith
// makes every method return that error.
type mockProductRepository struct {
	mu        sync.Mutex
	products  []*models.Product
	failWith  error
	listCalls int
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{}
}

func (m *mockProductRepository) List(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Product
	for _, p := range m.products {
		if !p.IsDeleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepository) ListAll(_ context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Product
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepository) GetByID(_ context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, p := range m.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepository) Create(_ context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if product.ID == "" {
		product.ID = ulid.Make().String()
	}
	cp := *product
	m.products = append(m.products, &cp)
	return nil
}

func (m *mockProductRepository) SoftDelete(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, p := range m.products {
		if p.ID == id {
			p.IsDeleted = true
			t := at
			p.DeletedAt = &t
		}
	}
	return nil
}

func (m *mockProductRepository) Restore(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, p := range m.products {
		if p.ID == id {
			p.IsDeleted = false
			p.DeletedAt = nil
		}
	}
	return nil
}

func (m *mockProductRepository) ListExpiredTrash(_ context.Context, cutoff time.Time) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Product
	for _, p := range m.products {
		if p.IsDeleted && p.DeletedAt != nil && p.DeletedAt.Before(cutoff) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepository) DeleteByIDs(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []*models.Product
	for _, p := range m.products {
		if !drop[p.ID] {
			kept = append(kept, p)
		}
	}
	m.products = kept
	return nil
}

// mockCategoryRepository is an in-memory CategoryRepository.
type mockCategoryRepository struct {
	mu         sync.Mutex
	categories []models.Category
	failWith   error
}

func newMockCategoryRepository() *mockCategoryRepository {
	return &mockCategoryRepository{}
}

func (m *mockCategoryRepository) List(_ context.Context, topLevelOnly bool) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.Category
	for _, c := range m.categories {
		if topLevelOnly && c.ParentID != nil {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCategoryRepository) Create(_ context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if category.ID == "" {
		category.ID = ulid.Make().String()
	}
	m.categories = append(m.categories, *category)
	return nil
}

// mockClickRepository is an in-memory ClickEventRepository.
type mockClickRepository struct {
	mu       sync.Mutex
	events   []models.ClickEvent
	failWith error
}

func newMockClickRepository() *mockClickRepository {
	return &mockClickRepository{}
}

func (m *mockClickRepository) List(_ context.Context, dateRange *models.DateRange) ([]models.ClickEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []models.ClickEvent
	for _, e := range m.events {
		if dateRange != nil && !dateRange.Contains(e.CreatedAt) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockClickRepository) Record(_ context.Context, event *models.ClickEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if event.ID == "" {
		event.ID = ulid.Make().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	m.events = append(m.events, *event)
	return nil
}
