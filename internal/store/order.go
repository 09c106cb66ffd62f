// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

// total_try is stored as NUMERIC lira and exposed as integer kuruş.
const orderColumns = `id, short_id, order_type, template_id, ai_template_id, user_id,
	buyer_email, recipient_name, sender_name, message, special_date, design_style,
	text_fields, duration_hours, expires_at, ROUND(total_try * 100)::BIGINT, status,
	payment_provider, payment_reference, paid_at, created_at, updated_at`

// OrderStore handles order persistence and payment state transitions.
type OrderStore struct {
	db *sql.DB
}

// NewOrderStore creates a new OrderStore with the given database connection.
func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

func scanOrder(row rowScanner) (*models.Order, error) {
	o := &models.Order{}
	err := row.Scan(
		&o.ID, &o.ShortID, &o.Type, &o.TemplateID, &o.AITemplateID, &o.UserID,
		&o.BuyerEmail, &o.RecipientName, &o.SenderName, &o.Message, &o.SpecialDate, &o.DesignStyle,
		&o.TextFields, &o.DurationHours, &o.ExpiresAt, &o.TotalCents, &o.Status,
		&o.PaymentProvider, &o.PaymentReference, &o.PaidAt, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// Create inserts a pending order and returns it with generated fields populated.
func (s *OrderStore) Create(ctx context.Context, o *models.Order) (*models.Order, error) {
	if o.Type == "" {
		o.Type = models.OrderPersonalPage
	}
	if o.PaymentProvider == "" {
		o.PaymentProvider = "paytr"
	}

	out, err := scanOrder(s.db.QueryRowContext(ctx, `
		INSERT INTO orders (short_id, order_type, template_id, ai_template_id, user_id,
			buyer_email, recipient_name, sender_name, message, special_date, design_style,
			text_fields, duration_hours, expires_at, total_try, payment_provider, payment_reference)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15::BIGINT / 100.0, $16, $17)
		RETURNING `+orderColumns,
		o.ShortID, o.Type, o.TemplateID, o.AITemplateID, o.UserID,
		o.BuyerEmail, o.RecipientName, o.SenderName, o.Message, o.SpecialDate, o.DesignStyle,
		o.TextFields, o.DurationHours, o.ExpiresAt, o.TotalCents, o.PaymentProvider, o.PaymentReference,
	))
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return out, nil
}

// FindByID retrieves an order by UUID. Returns nil if not found.
func (s *OrderStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return o, nil
}

// FindByReference retrieves an order by the reference sent to the payment
// provider. Returns nil if not found.
func (s *OrderStore) FindByReference(ctx context.Context, ref string) (*models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE payment_reference = $1`, ref))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find order by reference: %w", err)
	}
	return o, nil
}

// ListByUser returns a user's orders, newest first.
func (s *OrderStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// MarkCompleted moves a pending order to completed and stamps paid_at.
// A personal page's display window starts at payment. It returns nil when
// the order is missing or was already settled, so a replayed notification
// has no effect.
func (s *OrderStore) MarkCompleted(ctx context.Context, ref string) (*models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx, `
		UPDATE orders SET status = 'completed', paid_at = NOW(), updated_at = NOW(),
			expires_at = CASE WHEN order_type = 'personal_page'
				THEN NOW() + make_interval(hours => duration_hours) ELSE expires_at END
		WHERE payment_reference = $1 AND status = 'pending'
		RETURNING `+orderColumns, ref))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("complete order: %w", err)
	}
	return o, nil
}

// MarkFailed moves a pending order to failed. Settled orders are left alone.
func (s *OrderStore) MarkFailed(ctx context.Context, ref string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE orders SET status = 'failed', updated_at = NOW()
		WHERE payment_reference = $1 AND status = 'pending'`, ref)
	if err != nil {
		return fmt.Errorf("fail order: %w", err)
	}
	return nil
}
