package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/repository"
)

// BoardItemRepository implements repository.BoardItemRepository for SQLite
type BoardItemRepository struct {
	db *DB
}

// NewBoardItemRepository creates a new BoardItemRepository
func NewBoardItemRepository(db *DB) *BoardItemRepository {
	return &BoardItemRepository{db: db}
}

// List returns the stored board layout for a reviewer.
func (r *BoardItemRepository) List(ctx context.Context, reviewerKey string) ([]api.BoardItem, error) {
	query := `
		SELECT item_key, x_pct, y_pct, zone, collapsed, updated_at
		FROM board_items
		WHERE reviewer = ?
	`
	rows, err := r.db.QueryContext(ctx, query, reviewerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list board items: %w", err)
	}
	defer rows.Close()

	out := []api.BoardItem{}
	for rows.Next() {
		var item api.BoardItem
		if err := rows.Scan(&item.ItemKey, &item.XPct, &item.YPct, &item.Zone, &item.Collapsed, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Upsert writes one card's layout keyed by (reviewer, item_key).
func (r *BoardItemRepository) Upsert(ctx context.Context, reviewerKey string, item *api.BoardItem) (*api.BoardItem, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO board_items (reviewer, item_key, x_pct, y_pct, zone, collapsed, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(reviewer, item_key) DO UPDATE SET
			x_pct = excluded.x_pct,
			y_pct = excluded.y_pct,
			zone = excluded.zone,
			collapsed = excluded.collapsed,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, reviewerKey, item.ItemKey, item.XPct, item.YPct, item.Zone, item.Collapsed, now); err != nil {
		return nil, fmt.Errorf("failed to upsert board item: %w", err)
	}

	stored := *item
	stored.UpdatedAt = now
	return &stored, nil
}

// BoardNoteRepository implements repository.BoardNoteRepository for SQLite
type BoardNoteRepository struct {
	db *DB
}

// NewBoardNoteRepository creates a new BoardNoteRepository
func NewBoardNoteRepository(db *DB) *BoardNoteRepository {
	return &BoardNoteRepository{db: db}
}

const boardNoteColumns = `id, x_pct, y_pct, title, body, collapsed, created_at, updated_at`

// List returns all board notes for a reviewer, oldest first.
func (r *BoardNoteRepository) List(ctx context.Context, reviewerKey string) ([]api.BoardNote, error) {
	query := `SELECT ` + boardNoteColumns + ` FROM board_notes WHERE reviewer = ? ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, reviewerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list board notes: %w", err)
	}
	defer rows.Close()

	out := []api.BoardNote{}
	for rows.Next() {
		var n api.BoardNote
		if err := rows.Scan(&n.ID, &n.XPct, &n.YPct, &n.Title, &n.Body, &n.Collapsed, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board note: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Insert stores a new board note.
func (r *BoardNoteRepository) Insert(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error) {
	now := time.Now().UTC()
	stored := *n
	stored.CreatedAt = now
	stored.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO board_notes (id, reviewer, x_pct, y_pct, title, body, collapsed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		stored.ID, reviewerKey, stored.XPct, stored.YPct, stored.Title, stored.Body, stored.Collapsed, stored.CreatedAt, stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert board note: %w", err)
	}
	return &stored, nil
}

// Update overwrites a board note's user-editable fields.
func (r *BoardNoteRepository) Update(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error) {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		UPDATE board_notes
		SET x_pct = ?, y_pct = ?, title = ?, body = ?, collapsed = ?, updated_at = ?
		WHERE id = ? AND reviewer = ?
	`,
		n.XPct, n.YPct, n.Title, n.Body, n.Collapsed, now, n.ID, reviewerKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update board note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return nil, repository.ErrNotFound
	}

	var stored api.BoardNote
	err = r.db.QueryRowContext(ctx,
		`SELECT `+boardNoteColumns+` FROM board_notes WHERE id = ? AND reviewer = ?`,
		n.ID, reviewerKey,
	).Scan(&stored.ID, &stored.XPct, &stored.YPct, &stored.Title, &stored.Body, &stored.Collapsed, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reload board note: %w", err)
	}
	return &stored, nil
}

// Delete removes a board note.
func (r *BoardNoteRepository) Delete(ctx context.Context, reviewerKey, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM board_notes WHERE id = ? AND reviewer = ?`,
		id, reviewerKey,
	)
	if err != nil {
		return fmt.Errorf("failed to delete board note: %w", err)
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
