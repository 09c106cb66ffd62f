package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

const aiTemplateColumns = `id, user_id, slug, title, prompt, html_content, editable_fields, version, created_at, updated_at`

// AITemplateStore persists user-generated templates.
type AITemplateStore struct {
	db *sql.DB
}

// NewAITemplateStore creates a new AITemplateStore with the given database connection.
func NewAITemplateStore(db *sql.DB) *AITemplateStore {
	return &AITemplateStore{db: db}
}

func scanAITemplate(row rowScanner) (*models.AITemplate, error) {
	t := &models.AITemplate{}
	err := row.Scan(&t.ID, &t.UserID, &t.Slug, &t.Title, &t.Prompt, &t.HTMLContent,
		&t.EditableFields, &t.Version, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

// Create inserts a new AI template at version 1.
func (s *AITemplateStore) Create(ctx context.Context, t *models.AITemplate) (*models.AITemplate, error) {
	out, err := scanAITemplate(s.db.QueryRowContext(ctx, `
		INSERT INTO ai_templates (user_id, slug, title, prompt, html_content, editable_fields)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+aiTemplateColumns,
		t.UserID, t.Slug, t.Title, t.Prompt, t.HTMLContent, t.EditableFields))
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create ai template: %w", err)
	}
	return out, nil
}

// FindByID retrieves an AI template. Returns nil if not found.
func (s *AITemplateStore) FindByID(ctx context.Context, id uuid.UUID) (*models.AITemplate, error) {
	t, err := scanAITemplate(s.db.QueryRowContext(ctx,
		`SELECT `+aiTemplateColumns+` FROM ai_templates WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find ai template: %w", err)
	}
	return t, nil
}

// ListByUser returns a user's templates, newest first.
func (s *AITemplateStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AITemplate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+aiTemplateColumns+` FROM ai_templates WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list ai templates: %w", err)
	}
	defer rows.Close()

	var out []models.AITemplate
	for rows.Next() {
		t, err := scanAITemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ai template: %w", err)
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// UpdateContent replaces the markup of a template owned by userID and bumps
// its version. Returns nil when no owned template matches.
func (s *AITemplateStore) UpdateContent(ctx context.Context, id, userID uuid.UUID, html string, editable map[string]string) (*models.AITemplate, error) {
	t, err := scanAITemplate(s.db.QueryRowContext(ctx, `
		UPDATE ai_templates SET
			html_content = $1, editable_fields = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND user_id = $4
		RETURNING `+aiTemplateColumns,
		html, fields.Map(editable), id, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update ai template: %w", err)
	}
	return t, nil
}

// Delete removes a template owned by userID and reports whether one was
// deleted.
func (s *AITemplateStore) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM ai_templates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete ai template: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
