package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/repository"
)

// CommentRepository implements repository.CommentRepository for SQLite
type CommentRepository struct {
	db *DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentColumns = `id, num, x_pct, y_pct, text, collapsed, created_at, updated_at`

// List returns all comments for a reviewer ordered by num.
func (r *CommentRepository) List(ctx context.Context, reviewerKey string) ([]api.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE reviewer = ? ORDER BY num ASC`
	rows, err := r.db.QueryContext(ctx, query, reviewerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	out := []api.Comment{}
	for rows.Next() {
		var c api.Comment
		if err := rows.Scan(&c.ID, &c.Num, &c.XPct, &c.YPct, &c.Text, &c.Collapsed, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get retrieves a comment by id.
func (r *CommentRepository) Get(ctx context.Context, reviewerKey, id string) (*api.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = ? AND reviewer = ?`
	var c api.Comment
	err := r.db.QueryRowContext(ctx, query, id, reviewerKey).Scan(
		&c.ID, &c.Num, &c.XPct, &c.YPct, &c.Text, &c.Collapsed, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

// Insert stores a new comment, assigning the next per-reviewer num inside a
// transaction. Freed nums are never reassigned: the counter only grows.
func (r *CommentRepository) Insert(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(num), 0) + 1 FROM comments WHERE reviewer = ?`,
		reviewerKey,
	).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("failed to assign comment num: %w", err)
	}

	now := time.Now().UTC()
	stored := *c
	stored.Num = next
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO comments (id, reviewer, num, x_pct, y_pct, text, collapsed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		stored.ID, reviewerKey, stored.Num, stored.XPct, stored.YPct, stored.Text, stored.Collapsed, stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit comment insert: %w", err)
	}
	return &stored, nil
}

// Update overwrites a comment's user-editable fields. num and created_at
// never change after insert.
func (r *CommentRepository) Update(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		UPDATE comments
		SET x_pct = ?, y_pct = ?, text = ?, collapsed = ?, updated_at = ?
		WHERE id = ? AND reviewer = ?
	`,
		c.XPct, c.YPct, c.Text, c.Collapsed, now, c.ID, reviewerKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}
	return r.Get(ctx, reviewerKey, c.ID)
}

// Delete removes a comment.
func (r *CommentRepository) Delete(ctx context.Context, reviewerKey, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM comments WHERE id = ? AND reviewer = ?`,
		id, reviewerKey,
	)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
