package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/catalog"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

// CreditPackages are the AI credit bundles offered on the pricing page.
var CreditPackages = []models.CreditPackage{
	{ID: "credits-10", Name: "Başlangıç", Subtitle: "10 AI Kullanım Hakkı", Credits: 10, PriceCents: 19900, IsActive: true},
	{ID: "credits-30", Name: "Popüler", Subtitle: "30 AI Kullanım Hakkı", Credits: 30, PriceCents: 49900, IsPopular: true, IsActive: true},
	{ID: "credits-100", Name: "Premium", Subtitle: "100 AI Kullanım Hakkı", Credits: 100, PriceCents: 99900, IsActive: true},
}

// Admin holds the credentials of the first administrator.
type Admin struct {
	Email    string
	Password string
}

// Seed syncs the template catalog and credit packages into the database and
// creates the admin user when no users exist. Safe to run on every start.
func Seed(ctx context.Context, db *sql.DB, cat *catalog.Catalog, admin Admin) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	for _, d := range cat.All() {
		var audio *string
		if d.BackgroundAudioURL != "" {
			audio = &d.BackgroundAudioURL
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO templates (slug, title, audience, bg_audio_url, description)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (slug) DO UPDATE SET
				title = EXCLUDED.title, audience = EXCLUDED.audience,
				bg_audio_url = EXCLUDED.bg_audio_url, description = EXCLUDED.description,
				updated_at = NOW()`,
			d.Slug, d.Title, models.StringList(d.Audience), audio, d.Description)
		if err != nil {
			return fmt.Errorf("seed template %s: %w", d.Slug, err)
		}
	}

	for _, p := range CreditPackages {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO credit_packages (id, name, subtitle, credits, price, is_popular, is_active)
			VALUES ($1, $2, $3, $4, $5::BIGINT / 100.0, $6, $7)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.Subtitle, p.Credits, p.PriceCents, p.IsPopular, p.IsActive)
		if err != nil {
			return fmt.Errorf("seed credit package %s: %w", p.ID, err)
		}
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count == 0 && admin.Email != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed bcrypt: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (email, password_hash, display_name, role)
			VALUES ($1, $2, $3, $4)`,
			admin.Email, string(hash), "Admin", models.RoleAdmin); err != nil {
			return fmt.Errorf("seed insert admin: %w", err)
		}
		slog.Info("database seeded with admin user", "email", admin.Email)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}
	slog.Info("catalog synced", "templates", len(cat.All()), "credit_packages", len(CreditPackages))
	return nil
}
