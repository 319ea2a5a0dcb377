package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

// SQLiteProductRepository implements ProductRepository for SQLite/libsql.
type SQLiteProductRepository struct {
	db *sql.DB
}

// NewSQLiteProductRepository creates a new SQLite product repository.
func NewSQLiteProductRepository(db *sql.DB) *SQLiteProductRepository {
	return &SQLiteProductRepository{db: db}
}

const productColumns = `id, name, slug, description, product_type, category_id,
	original_price, discounted_price, purchase_price, revenue_type,
	affiliate_url, is_deleted, deleted_at, created_at, updated_at`

// List returns all non-deleted products, newest first.
func (r *SQLiteProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_deleted = 0
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, wrapErr("products.list", err)
	}
	defer rows.Close()
	return scanProducts(rows, "products.list")
}

// ListAll returns every product row, soft-deleted included.
func (r *SQLiteProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, wrapErr("products.list_all", err)
	}
	defer rows.Close()
	return scanProducts(rows, "products.list_all")
}

// GetByID retrieves a product by ID, returning nil if not found.
func (r *SQLiteProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = ?
	`, id)

	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("products.get", err)
	}
	return p, nil
}

// Create inserts a new product. An ID is assigned if missing.
func (r *SQLiteProductRepository) Create(ctx context.Context, product *models.Product) error {
	now := time.Now().UTC()
	if product.ID == "" {
		product.ID = ulid.Make().String()
	}
	product.CreatedAt = now
	product.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (
			id, name, slug, description, product_type, category_id,
			original_price, discounted_price, purchase_price, revenue_type,
			affiliate_url, is_deleted, deleted_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, NULL, ?, ?)
	`,
		product.ID,
		product.Name,
		product.Slug,
		product.Description,
		string(product.ProductType),
		product.CategoryID,
		product.OriginalPrice,
		product.DiscountedPrice,
		product.PurchasePrice,
		string(product.RevenueType),
		product.AffiliateURL,
		now.Format(time.RFC3339),
		now.Format(time.RFC3339),
	)
	return wrapErr("products.create", err)
}

// SoftDelete marks a product deleted at the given time.
func (r *SQLiteProductRepository) SoftDelete(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET is_deleted = 1, deleted_at = ?, updated_at = ?
		WHERE id = ?
	`, at.UTC().Format(time.RFC3339), time.Now().UTC().Format(time.RFC3339), id)
	return wrapErr("products.soft_delete", err)
}

// Restore clears the deleted flag and timestamp.
func (r *SQLiteProductRepository) Restore(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET is_deleted = 0, deleted_at = NULL, updated_at = ?
		WHERE id = ?
	`, time.Now().UTC().Format(time.RFC3339), id)
	return wrapErr("products.restore", err)
}

// ListExpiredTrash returns soft-deleted products with deleted_at strictly
// before the cutoff. Timestamps are stored as UTC RFC 3339 strings, which
// order lexicographically.
func (r *SQLiteProductRepository) ListExpiredTrash(ctx context.Context, cutoff time.Time) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE is_deleted = 1 AND deleted_at IS NOT NULL AND deleted_at < ?
		ORDER BY deleted_at ASC
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, wrapErr("products.list_expired_trash", err)
	}
	defer rows.Close()
	return scanProducts(rows, "products.list_expired_trash")
}

// DeleteByIDs permanently removes the given rows in one statement.
func (r *SQLiteProductRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	_, err := r.db.ExecContext(ctx,
		"DELETE FROM products WHERE id IN ("+placeholders+")", args...)
	return wrapErr("products.delete_by_ids", err)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p          models.Product
		categoryID sql.NullString
		deletedAt  sql.NullString
		isDeleted  int
		createdAt  string
		updatedAt  string
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ProductType, &categoryID,
		&p.OriginalPrice, &p.DiscountedPrice, &p.PurchasePrice, &p.RevenueType,
		&p.AffiliateURL, &isDeleted, &deletedAt, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		p.CategoryID = &categoryID.String
	}
	p.IsDeleted = isDeleted != 0
	if deletedAt.Valid {
		if t, err := time.Parse(time.RFC3339, deletedAt.String); err == nil {
			p.DeletedAt = &t
		}
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}

func scanProducts(rows *sql.Rows, op string) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		products = append(products, *p)
	}
	return products, wrapErr(op, rows.Err())
}
