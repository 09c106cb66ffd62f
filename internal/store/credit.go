// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
)

// StarterCredits is granted the first time a user's balance is read.
const StarterCredits = 1

const starterDescription = "Ücretsiz başlangıç kredisi"

// ErrNoCredits is returned by UseCredit when the balance is exhausted.
var ErrNoCredits = errors.New("no credits remaining")

// CreditStore manages AI credit balances, packages and the transaction log.
type CreditStore struct {
	db *sql.DB
}

// NewCreditStore creates a new CreditStore with the given database connection.
func NewCreditStore(db *sql.DB) *CreditStore {
	return &CreditStore{db: db}
}

// Balance returns the user's balance, creating it with the starter bonus
// on first access.
func (s *CreditStore) Balance(ctx context.Context, userID uuid.UUID) (models.CreditBalance, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO user_credits (user_id, total_credits, used_credits)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id) DO NOTHING`, userID, StarterCredits)
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("ensure credits: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		if err := logTransaction(ctx, tx, userID, models.CreditBonus, StarterCredits, starterDescription, nil, nil); err != nil {
			return models.CreditBalance{}, err
		}
	}

	var b models.CreditBalance
	if err := tx.QueryRowContext(ctx,
		`SELECT total_credits, used_credits FROM user_credits WHERE user_id = $1`,
		userID).Scan(&b.Total, &b.Used); err != nil {
		return models.CreditBalance{}, fmt.Errorf("read credits: %w", err)
	}
	return b, tx.Commit()
}

// UseCredit consumes one credit for a generation and logs it. It returns
// ErrNoCredits when nothing is left.
func (s *CreditStore) UseCredit(ctx context.Context, userID uuid.UUID, aiTemplateID *uuid.UUID, description string) (models.CreditBalance, error) {
	if _, err := s.Balance(ctx, userID); err != nil {
		return models.CreditBalance{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b models.CreditBalance
	err = tx.QueryRowContext(ctx, `
		UPDATE user_credits SET used_credits = used_credits + 1, updated_at = NOW()
		WHERE user_id = $1 AND used_credits < total_credits
		RETURNING total_credits, used_credits`, userID).Scan(&b.Total, &b.Used)
	if err == sql.ErrNoRows {
		return models.CreditBalance{}, ErrNoCredits
	}
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("use credit: %w", err)
	}

	if err := logTransaction(ctx, tx, userID, models.CreditUsage, -1, description, nil, aiTemplateID); err != nil {
		return models.CreditBalance{}, err
	}
	return b, tx.Commit()
}

// RefundCredit returns a credit taken by UseCredit whose work was not
// delivered.
func (s *CreditStore) RefundCredit(ctx context.Context, userID uuid.UUID, description string) (models.CreditBalance, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var b models.CreditBalance
	err = tx.QueryRowContext(ctx, `
		UPDATE user_credits SET used_credits = used_credits - 1, updated_at = NOW()
		WHERE user_id = $1 AND used_credits > 0
		RETURNING total_credits, used_credits`, userID).Scan(&b.Total, &b.Used)
	if err == sql.ErrNoRows {
		return models.CreditBalance{}, fmt.Errorf("refund credit: nothing used by %s", userID)
	}
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("refund credit: %w", err)
	}

	if err := logTransaction(ctx, tx, userID, models.CreditRefund, 1, description, nil, nil); err != nil {
		return models.CreditBalance{}, err
	}
	return b, tx.Commit()
}

// AddCredits grants purchased credits. When orderID is set the grant is
// applied at most once per order; repeated calls return the balance
// unchanged.
func (s *CreditStore) AddCredits(ctx context.Context, userID uuid.UUID, credits int, description string, orderID *uuid.UUID) (models.CreditBalance, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO credit_transactions (user_id, kind, credits, description, order_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) WHERE kind = 'purchase' DO NOTHING`,
		userID, models.CreditPurchase, credits, description, orderID)
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("log credit transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if err := tx.Commit(); err != nil {
			return models.CreditBalance{}, err
		}
		return s.Balance(ctx, userID)
	}

	var b models.CreditBalance
	err = tx.QueryRowContext(ctx, `
		INSERT INTO user_credits (user_id, total_credits, used_credits)
		VALUES ($1, $2, 0)
		ON CONFLICT (user_id) DO UPDATE SET
			total_credits = user_credits.total_credits + EXCLUDED.total_credits,
			updated_at = NOW()
		RETURNING total_credits, used_credits`, userID, credits).Scan(&b.Total, &b.Used)
	if err != nil {
		return models.CreditBalance{}, fmt.Errorf("add credits: %w", err)
	}
	return b, tx.Commit()
}

func logTransaction(ctx context.Context, tx *sql.Tx, userID uuid.UUID, kind models.CreditKind, credits int, description string, orderID, aiTemplateID *uuid.UUID) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credit_transactions (user_id, kind, credits, description, order_id, ai_template_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, kind, credits, description, orderID, aiTemplateID)
	if err != nil {
		return fmt.Errorf("log credit transaction: %w", err)
	}
	return nil
}

// Transactions returns the user's most recent credit movements.
func (s *CreditStore) Transactions(ctx context.Context, userID uuid.UUID, limit int) ([]models.CreditTransaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, kind, credits, description, order_id, ai_template_id, created_at
		FROM credit_transactions WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list credit transactions: %w", err)
	}
	defer rows.Close()

	var out []models.CreditTransaction
	for rows.Next() {
		var t models.CreditTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Kind, &t.Credits, &t.Description,
			&t.OrderID, &t.AITemplateID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const packageColumns = `id, name, subtitle, credits, ROUND(price * 100)::BIGINT, is_popular, is_active`

func scanPackage(row rowScanner) (*models.CreditPackage, error) {
	p := &models.CreditPackage{}
	err := row.Scan(&p.ID, &p.Name, &p.Subtitle, &p.Credits, &p.PriceCents, &p.IsPopular, &p.IsActive)
	return p, err
}

// Packages lists active credit packages, cheapest first.
func (s *CreditStore) Packages(ctx context.Context) ([]models.CreditPackage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+packageColumns+` FROM credit_packages WHERE is_active ORDER BY price`)
	if err != nil {
		return nil, fmt.Errorf("list credit packages: %w", err)
	}
	defer rows.Close()

	var out []models.CreditPackage
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit package: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// FindPackage retrieves an active package by id. Returns nil if not found.
func (s *CreditStore) FindPackage(ctx context.Context, id string) (*models.CreditPackage, error) {
	p, err := scanPackage(s.db.QueryRowContext(ctx,
		`SELECT `+packageColumns+` FROM credit_packages WHERE id = $1 AND is_active`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find credit package: %w", err)
	}
	return p, nil
}

// UpsertPackage inserts or refreshes a credit package.
func (s *CreditStore) UpsertPackage(ctx context.Context, p models.CreditPackage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credit_packages (id, name, subtitle, credits, price, is_popular, is_active)
		VALUES ($1, $2, $3, $4, $5::BIGINT / 100.0, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, subtitle = EXCLUDED.subtitle, credits = EXCLUDED.credits,
			price = EXCLUDED.price, is_popular = EXCLUDED.is_popular, is_active = EXCLUDED.is_active`,
		p.ID, p.Name, p.Subtitle, p.Credits, p.PriceCents, p.IsPopular, p.IsActive)
	if err != nil {
		return fmt.Errorf("upsert credit package %s: %w", p.ID, err)
	}
	return nil
}
