package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/models"
	"github.com/yunusgulbuz/gizlimesaj-sub002/internal/pagination"
)

const commentSelect = `
	SELECT c.id, c.template_id, c.user_id,
		COALESCE(NULLIF(u.display_name, ''), split_part(u.email, '@', 1)),
		c.comment, c.is_approved,
		(SELECT COUNT(*) FROM comment_likes l WHERE l.comment_id = c.id),
		c.created_at, c.updated_at
	FROM template_comments c
	JOIN users u ON u.id = c.user_id`

// CommentStore handles template comments and their likes.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore creates a new CommentStore with the given database connection.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

func scanComment(row rowScanner) (*models.Comment, error) {
	c := &models.Comment{}
	err := row.Scan(&c.ID, &c.TemplateID, &c.UserID, &c.UserName, &c.Comment,
		&c.IsApproved, &c.LikeCount, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// List returns one page of approved comments for a template, newest first,
// together with the total count of approved comments.
func (s *CommentStore) List(ctx context.Context, templateID uuid.UUID, p pagination.Params) ([]models.Comment, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM template_comments WHERE template_id = $1 AND is_approved`,
		templateID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, commentSelect+`
		WHERE c.template_id = $1 AND c.is_approved
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`,
		templateID, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	out := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, *c)
	}
	return out, total, rows.Err()
}

// FindByID retrieves a comment. Returns nil if not found.
func (s *CommentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx, commentSelect+` WHERE c.id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return c, nil
}

// Create inserts a comment. A second comment by the same user on the same
// template returns ErrDuplicate.
func (s *CommentStore) Create(ctx context.Context, templateID, userID uuid.UUID, body string, approved bool) (*models.Comment, error) {
	var id uuid.UUID
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO template_comments (template_id, user_id, comment, is_approved)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		templateID, userID, body, approved).Scan(&id)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return s.FindByID(ctx, id)
}

// Update rewrites a comment owned by userID. Returns nil when no owned
// comment matches.
func (s *CommentStore) Update(ctx context.Context, id, userID uuid.UUID, body string, approved bool) (*models.Comment, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE template_comments SET comment = $1, is_approved = $2, updated_at = NOW()
		WHERE id = $3 AND user_id = $4`,
		body, approved, id, userID)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.FindByID(ctx, id)
}

// Delete removes a comment owned by userID and reports whether one was
// deleted.
func (s *CommentStore) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM template_comments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Like records a like and returns ErrDuplicate if the user already liked
// the comment.
func (s *CommentStore) Like(ctx context.Context, commentID, userID uuid.UUID) (int, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, commentID, userID)
	if err != nil {
		return 0, fmt.Errorf("like comment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, ErrDuplicate
	}
	return s.LikeCount(ctx, commentID)
}

// Unlike removes a like. Removing a missing like is not an error.
func (s *CommentStore) Unlike(ctx context.Context, commentID, userID uuid.UUID) (int, error) {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`, commentID, userID); err != nil {
		return 0, fmt.Errorf("unlike comment: %w", err)
	}
	return s.LikeCount(ctx, commentID)
}

// LikeCount returns the number of likes on a comment.
func (s *CommentStore) LikeCount(ctx context.Context, commentID uuid.UUID) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`, commentID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}
