package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

// SQLiteClickEventRepository implements ClickEventRepository for SQLite/libsql.
type SQLiteClickEventRepository struct {
	db *sql.DB
}

// NewSQLiteClickEventRepository creates a new SQLite click event repository.
func NewSQLiteClickEventRepository(db *sql.DB) *SQLiteClickEventRepository {
	return &SQLiteClickEventRepository{db: db}
}

// List returns click events newest first, optionally restricted to an
// inclusive date range.
func (r *SQLiteClickEventRepository) List(ctx context.Context, dateRange *models.DateRange) ([]models.ClickEvent, error) {
	query := `
		SELECT id, product_id, product_name, click_type, created_at
		FROM click_events
	`
	var args []any
	if dateRange != nil {
		query += ` WHERE created_at >= ? AND created_at <= ?`
		args = append(args,
			dateRange.From.UTC().Format(time.RFC3339),
			dateRange.To.UTC().Format(time.RFC3339),
		)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("clicks.list", err)
	}
	defer rows.Close()

	var events []models.ClickEvent
	for rows.Next() {
		var (
			e         models.ClickEvent
			createdAt string
		)
		if err := rows.Scan(&e.ID, &e.ProductID, &e.ProductName, &e.ClickType, &createdAt); err != nil {
			return nil, wrapErr("clicks.list", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		events = append(events, e)
	}
	return events, wrapErr("clicks.list", rows.Err())
}

// Record appends one click event. Events are never updated or deleted.
func (r *SQLiteClickEventRepository) Record(ctx context.Context, event *models.ClickEvent) error {
	if event.ID == "" {
		event.ID = ulid.Make().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO click_events (id, product_id, product_name, click_type, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		event.ID,
		event.ProductID,
		event.ProductName,
		string(event.ClickType),
		event.CreatedAt.UTC().Format(time.RFC3339),
	)
	return wrapErr("clicks.record", err)
}

