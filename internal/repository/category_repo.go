package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

// SQLiteCategoryRepository implements CategoryRepository for SQLite/libsql.
type SQLiteCategoryRepository struct {
	db *sql.DB
}

// NewSQLiteCategoryRepository creates a new SQLite category repository.
func NewSQLiteCategoryRepository(db *sql.DB) *SQLiteCategoryRepository {
	return &SQLiteCategoryRepository{db: db}
}

// List returns categories ordered by sort_order, optionally top-level only.
func (r *SQLiteCategoryRepository) List(ctx context.Context, topLevelOnly bool) ([]models.Category, error) {
	query := `
		SELECT id, name, slug, sort_order, parent_id, created_at
		FROM categories
	`
	if topLevelOnly {
		query += ` WHERE parent_id IS NULL`
	}
	query += ` ORDER BY sort_order ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapErr("categories.list", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var (
			c         models.Category
			parentID  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.SortOrder, &parentID, &createdAt); err != nil {
			return nil, wrapErr("categories.list", err)
		}
		if parentID.Valid {
			c.ParentID = &parentID.String
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		categories = append(categories, c)
	}
	return categories, wrapErr("categories.list", rows.Err())
}

// Create inserts a new category. An ID is assigned if missing.
func (r *SQLiteCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	now := time.Now().UTC()
	if category.ID == "" {
		category.ID = ulid.Make().String()
	}
	category.CreatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, slug, sort_order, parent_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		category.ID,
		category.Name,
		category.Slug,
		category.SortOrder,
		category.ParentID,
		now.Format(time.RFC3339),
	)
	return wrapErr("categories.create", err)
}
