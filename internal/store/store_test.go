// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/database"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "birmesaj")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "birmesaj")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway user removed when the test finishes.
// Dependent rows go with it through ON DELETE CASCADE.
func testUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()
	cleanUsers(t, db, email)
	u, err := NewUserStore(db).Create(context.Background(), email, "testpass123", "Test", models.RoleUser)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() { cleanUsers(t, db, email) })
	return u
}

// testTemplate upserts a throwaway catalog template.
func testTemplate(t *testing.T, db *sql.DB, slug string) *models.Template {
	t.Helper()
	tpl, err := NewTemplateStore(db).Upsert(context.Background(), &models.Template{
		Slug: slug, Title: "Test " + slug, Audience: models.StringList{"adult"},
	})
	if err != nil {
		t.Fatalf("upsert test template: %v", err)
	}
	t.Cleanup(func() { cleanTemplates(t, db, slug) })
	return tpl
}

func cleanUsers(t *testing.T, db *sql.DB, emails ...string) {
	t.Helper()
	for _, email := range emails {
		db.Exec("DELETE FROM credit_transactions WHERE user_id IN (SELECT id FROM users WHERE email = $1)", email)
		db.Exec("DELETE FROM orders WHERE user_id IN (SELECT id FROM users WHERE email = $1)", email)
		db.Exec("DELETE FROM users WHERE email = $1", email)
	}
}

func cleanTemplates(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, slug := range slugs {
		db.Exec("DELETE FROM personal_pages WHERE template_id IN (SELECT id FROM templates WHERE slug = $1)", slug)
		db.Exec("DELETE FROM orders WHERE template_id IN (SELECT id FROM templates WHERE slug = $1)", slug)
		db.Exec("DELETE FROM templates WHERE slug = $1", slug)
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID { return &id }
