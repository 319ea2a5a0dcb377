package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/tooldeck/tooldeck-api/internal/models"
)

// SQLiteSettingsRepository implements SettingsRepository for SQLite/libsql.
// Payloads are stored as JSON blobs; no schema is enforced on the values.
type SQLiteSettingsRepository struct {
	db *sql.DB
}

// NewSQLiteSettingsRepository creates a new SQLite settings repository.
func NewSQLiteSettingsRepository(db *sql.DB) *SQLiteSettingsRepository {
	return &SQLiteSettingsRepository{db: db}
}

// Get returns the payload for a key, or nil if the key is absent.
func (r *SQLiteSettingsRepository) Get(ctx context.Context, key string) (models.Settings, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM site_settings WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("settings.get", err)
	}

	var value models.Settings
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, wrapErr("settings.get", err)
	}
	return value, nil
}

// Put upserts the payload for a key.
func (r *SQLiteSettingsRepository) Put(ctx context.Context, key string, value models.Settings) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return wrapErr("settings.put", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(raw), time.Now().UTC().Format(time.RFC3339))
	return wrapErr("settings.put", err)
}
