package repository

import (
	"database/sql"
)

// Repositories bundles all repository implementations.
type Repositories struct {
	Product  ProductRepository
	Category CategoryRepository
	Click    ClickEventRepository
	Settings SettingsRepository
}

// NewRepositories creates all SQLite repositories over one connection.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Product:  NewSQLiteProductRepository(db),
		Category: NewSQLiteCategoryRepository(db),
		Click:    NewSQLiteClickEventRepository(db),
		Settings: NewSQLiteSettingsRepository(db),
	}
}
