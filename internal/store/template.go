package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

const templateColumns = `id, slug, title, audience, bg_audio_url, description, is_active, created_at, updated_at`

// TemplateStore reads and seeds catalog templates.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

func scanTemplate(row rowScanner) (*models.Template, error) {
	t := &models.Template{}
	err := row.Scan(&t.ID, &t.Slug, &t.Title, &t.Audience, &t.BackgroundAudioURL,
		&t.Description, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// ListActive returns active templates ordered by title.
func (s *TemplateStore) ListActive(ctx context.Context) ([]models.Template, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE is_active ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var out []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// FindByID retrieves a template by UUID. Returns nil if not found.
func (s *TemplateStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	t, err := scanTemplate(s.db.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by id: %w", err)
	}
	return t, nil
}

// FindBySlug retrieves an active template by slug. Returns nil if not found.
func (s *TemplateStore) FindBySlug(ctx context.Context, slug string) (*models.Template, error) {
	t, err := scanTemplate(s.db.QueryRowContext(ctx,
		`SELECT `+templateColumns+` FROM templates WHERE slug = $1 AND is_active`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find template by slug: %w", err)
	}
	return t, nil
}

// Upsert inserts a template or refreshes its catalog columns by slug.
func (s *TemplateStore) Upsert(ctx context.Context, t *models.Template) (*models.Template, error) {
	out, err := scanTemplate(s.db.QueryRowContext(ctx, `
		INSERT INTO templates (slug, title, audience, bg_audio_url, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE SET
			title = EXCLUDED.title,
			audience = EXCLUDED.audience,
			bg_audio_url = EXCLUDED.bg_audio_url,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING `+templateColumns,
		t.Slug, t.Title, t.Audience, t.BackgroundAudioURL, t.Description))
	if err != nil {
		return nil, fmt.Errorf("upsert template %s: %w", t.Slug, err)
	}
	return out, nil
}
