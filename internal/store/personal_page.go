package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/fields"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

const pageColumns = `id, order_id, short_id, template_id, ai_template_id, recipient_name,
	sender_name, message, special_date, design_style, text_fields, bg_audio_url,
	expires_at, is_active, share_title, share_description, share_site_name,
	share_image_url, created_at`

// PersonalPageStore handles the published greeting pages.
type PersonalPageStore struct {
	db *sql.DB
}

// NewPersonalPageStore creates a new PersonalPageStore with the given database connection.
func NewPersonalPageStore(db *sql.DB) *PersonalPageStore {
	return &PersonalPageStore{db: db}
}

func scanPage(row rowScanner) (*models.PersonalPage, error) {
	p := &models.PersonalPage{}
	err := row.Scan(
		&p.ID, &p.OrderID, &p.ShortID, &p.TemplateID, &p.AITemplateID, &p.RecipientName,
		&p.SenderName, &p.Message, &p.SpecialDate, &p.DesignStyle, &p.TextFields, &p.BgAudioURL,
		&p.ExpiresAt, &p.IsActive, &p.ShareTitle, &p.ShareDescription, &p.ShareSiteName,
		&p.ShareImageURL, &p.CreatedAt,
	)
	return p, err
}

// FindByShortID retrieves a page regardless of its active flag so callers
// can tell inactive pages from missing ones. Returns nil if not found.
func (s *PersonalPageStore) FindByShortID(ctx context.Context, shortID string) (*models.PersonalPage, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM personal_pages WHERE short_id = $1`, shortID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find personal page: %w", err)
	}
	return p, nil
}

// FindByOrder returns the page created for an order. Returns nil if none.
func (s *PersonalPageStore) FindByOrder(ctx context.Context, orderID uuid.UUID) (*models.PersonalPage, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM personal_pages WHERE order_id = $1`, orderID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find personal page by order: %w", err)
	}
	return p, nil
}

// CreateFromOrder publishes the page for a paid order. The page shares the
// order's short id. Calling it twice for the same order returns the
// existing page.
func (s *PersonalPageStore) CreateFromOrder(ctx context.Context, o *models.Order, bgAudioURL *string) (*models.PersonalPage, error) {
	if o.ExpiresAt == nil {
		return nil, fmt.Errorf("create personal page: order %s has no expiry", o.ID)
	}

	p, err := scanPage(s.db.QueryRowContext(ctx, `
		INSERT INTO personal_pages (order_id, short_id, template_id, ai_template_id,
			recipient_name, sender_name, message, special_date, design_style,
			text_fields, bg_audio_url, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (short_id) DO NOTHING
		RETURNING `+pageColumns,
		o.ID, o.ShortID, o.TemplateID, o.AITemplateID,
		o.RecipientName, o.SenderName, o.Message, o.SpecialDate, o.DesignStyle,
		o.TextFields, bgAudioURL, *o.ExpiresAt,
	))
	if err == sql.ErrNoRows {
		return s.FindByShortID(ctx, o.ShortID)
	}
	if err != nil {
		return nil, fmt.Errorf("create personal page: %w", err)
	}
	return p, nil
}

// UpdateTextFields merges values into the page's stored text fields and
// into the fields of the order it came from, so the edit is visible under
// the order-over-page precedence used when rendering. Empty values never
// replace stored ones.
func (s *PersonalPageStore) UpdateTextFields(ctx context.Context, shortID string, values fields.Map) (*models.PersonalPage, error) {
	p, err := scanPage(s.db.QueryRowContext(ctx, `
		WITH page AS (
			UPDATE personal_pages SET text_fields = text_fields || $1
			WHERE short_id = $2
			RETURNING *
		), linked AS (
			UPDATE orders SET text_fields = text_fields || $1, updated_at = NOW()
			WHERE id = (SELECT order_id FROM page)
		)
		SELECT `+pageColumns+` FROM page`,
		values.Compact(), shortID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update page text fields: %w", err)
	}
	return p, nil
}

// UpdateShareMeta stores the link preview metadata for a page.
func (s *PersonalPageStore) UpdateShareMeta(ctx context.Context, shortID, title, description, siteName, imageURL string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE personal_pages SET
			share_title = $1, share_description = $2, share_site_name = $3, share_image_url = $4
		WHERE short_id = $5`,
		title, description, siteName, imageURL, shortID)
	if err != nil {
		return fmt.Errorf("update share meta: %w", err)
	}
	return nil
}

// Deactivate hides a page from the public.
func (s *PersonalPageStore) Deactivate(ctx context.Context, shortID string) error {
	if _, err := s.db.ExecContext(ctx,
		`UPDATE personal_pages SET is_active = FALSE WHERE short_id = $1`, shortID); err != nil {
		return fmt.Errorf("deactivate page: %w", err)
	}
	return nil
}

// DeactivateExpired flags every active page whose expiry has passed and
// returns how many were changed.
func (s *PersonalPageStore) DeactivateExpired(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE personal_pages SET is_active = FALSE WHERE is_active AND expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("deactivate expired pages: %w", err)
	}
	return res.RowsAffected()
}
