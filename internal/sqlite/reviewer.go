package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/reviewer"
	"github.com/easelhq/easel/internal/repository"
)

// ReviewerRepository implements reviewer.Repository for SQLite
type ReviewerRepository struct {
	db *DB
}

// NewReviewerRepository creates a new ReviewerRepository
func NewReviewerRepository(db *DB) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// Create registers a reviewer keyed by token hash.
func (r *ReviewerRepository) Create(ctx context.Context, rev *reviewer.Reviewer) error {
	query := `
		INSERT INTO reviewers (token_hash, label, can_comment, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		rev.Key,
		rev.Label,
		rev.CanComment,
		rev.ExpiresAt,
		rev.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create reviewer: %w", err)
	}
	return nil
}

// GetByKey retrieves a reviewer by token hash.
func (r *ReviewerRepository) GetByKey(ctx context.Context, key string) (*reviewer.Reviewer, error) {
	query := `
		SELECT token_hash, label, can_comment, expires_at, created_at
		FROM reviewers
		WHERE token_hash = ?
	`
	var rev reviewer.Reviewer
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&rev.Key,
		&rev.Label,
		&rev.CanComment,
		&rev.ExpiresAt,
		&rev.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewer: %w", err)
	}
	return &rev, nil
}

// List returns all registered reviewers, newest first.
func (r *ReviewerRepository) List(ctx context.Context) ([]reviewer.Reviewer, error) {
	query := `
		SELECT token_hash, label, can_comment, expires_at, created_at
		FROM reviewers
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviewers: %w", err)
	}
	defer rows.Close()

	var out []reviewer.Reviewer
	for rows.Next() {
		var rev reviewer.Reviewer
		if err := rows.Scan(&rev.Key, &rev.Label, &rev.CanComment, &rev.ExpiresAt, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reviewer: %w", err)
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// Delete removes a reviewer registration.
func (r *ReviewerRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviewers WHERE token_hash = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete reviewer: %w", err)
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

// CompletionRepository implements repository.CompletionRepository for SQLite
type CompletionRepository struct {
	db *DB
}

// NewCompletionRepository creates a new CompletionRepository
func NewCompletionRepository(db *DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Get retrieves the done toggle for a reviewer.
func (r *CompletionRepository) Get(ctx context.Context, reviewerKey string) (*api.Completion, error) {
	var c api.Completion
	err := r.db.QueryRowContext(ctx,
		`SELECT is_done, updated_at FROM review_completion WHERE reviewer = ?`,
		reviewerKey,
	).Scan(&c.IsDone, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}
	return &c, nil
}

// Set writes the done toggle.
func (r *CompletionRepository) Set(ctx context.Context, reviewerKey string, isDone bool, at time.Time) (*api.Completion, error) {
	query := `
		INSERT INTO review_completion (reviewer, is_done, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(reviewer) DO UPDATE SET is_done = excluded.is_done, updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, reviewerKey, isDone, at); err != nil {
		return nil, fmt.Errorf("failed to set completion: %w", err)
	}
	return &api.Completion{IsDone: isDone, UpdatedAt: at}, nil
}

// InterviewNoteRepository implements repository.InterviewNoteRepository for SQLite
type InterviewNoteRepository struct {
	db *DB
}

// NewInterviewNoteRepository creates a new InterviewNoteRepository
func NewInterviewNoteRepository(db *DB) *InterviewNoteRepository {
	return &InterviewNoteRepository{db: db}
}

// List returns all chapter notes for a reviewer, ordered by sort order.
func (r *InterviewNoteRepository) List(ctx context.Context, reviewerKey string) ([]api.InterviewNote, error) {
	query := `
		SELECT chapter_key, summary, quotes, sort_order
		FROM interview_notes
		WHERE reviewer = ?
		ORDER BY sort_order ASC
	`
	rows, err := r.db.QueryContext(ctx, query, reviewerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview notes: %w", err)
	}
	defer rows.Close()

	out := []api.InterviewNote{}
	for rows.Next() {
		var n api.InterviewNote
		var quotes string
		if err := rows.Scan(&n.ChapterKey, &n.Summary, &quotes, &n.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan interview note: %w", err)
		}
		// Malformed quote payloads degrade to none rather than failing the load.
		if err := json.Unmarshal([]byte(quotes), &n.Quotes); err != nil {
			n.Quotes = nil
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// Upsert writes one chapter note.
func (r *InterviewNoteRepository) Upsert(ctx context.Context, reviewerKey string, n *api.InterviewNote) (*api.InterviewNote, error) {
	quotes, err := json.Marshal(n.Quotes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode quotes: %w", err)
	}
	query := `
		INSERT INTO interview_notes (reviewer, chapter_key, summary, quotes, sort_order, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(reviewer, chapter_key) DO UPDATE SET
			summary = excluded.summary,
			quotes = excluded.quotes,
			sort_order = excluded.sort_order,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.ExecContext(ctx, query, reviewerKey, n.ChapterKey, n.Summary, string(quotes), n.SortOrder, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("failed to upsert interview note: %w", err)
	}
	return n, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
