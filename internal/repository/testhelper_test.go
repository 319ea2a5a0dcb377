package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/tooldeck/tooldeck-api/internal/database/migrations"
	"github.com/tooldeck/tooldeck-api/internal/models"
	_ "github.com/tursodatabase/go-libsql"
)

// setupTestDB creates an in-memory SQLite database with migrations applied.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("libsql", ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := migrations.Run(db, nil); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// setupTestRepos creates all repositories over a test database.
func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()
	return NewRepositories(setupTestDB(t))
}

// insertTestProduct creates a product through the repository.
func insertTestProduct(t *testing.T, repos *Repositories, p *models.Product) *models.Product {
	t.Helper()
	if err := repos.Product.Create(context.Background(), p); err != nil {
		t.Fatalf("failed to insert test product: %v", err)
	}
	return p
}

// insertTestCategory creates a category through the repository.
func insertTestCategory(t *testing.T, repos *Repositories, c *models.Category) *models.Category {
	t.Helper()
	if err := repos.Category.Create(context.Background(), c); err != nil {
		t.Fatalf("failed to insert test category: %v", err)
	}
	return c
}

// softDeleteAt soft-deletes a product with an explicit deletion time.
func softDeleteAt(t *testing.T, repos *Repositories, id string, at time.Time) {
	t.Helper()
	if err := repos.Product.SoftDelete(context.Background(), id, at); err != nil {
		t.Fatalf("failed to soft delete product %s: %v", id, err)
	}
}
