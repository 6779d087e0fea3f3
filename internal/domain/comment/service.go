package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/repository"
	"github.com/google/uuid"
)

// Service handles freeform positioned comments.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new comment service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// List returns all comments for a reviewer, ordered by num.
func (s *Service) List(ctx context.Context, reviewerKey string) ([]api.Comment, error) {
	return s.repo.List(ctx, reviewerKey)
}

// Upsert inserts or updates a comment. A nil id in the params requests an
// insert: the server assigns the id and the next per-reviewer num and the
// returned row carries both. Positions are clamped on every write.
func (s *Service) Upsert(ctx context.Context, reviewerKey string, p api.CommentUpsertParams) (*api.Comment, error) {
	c := &api.Comment{
		XPct:      api.ClampPct(p.XPct),
		YPct:      api.ClampPct(p.YPct),
		Text:      p.Text,
		Collapsed: p.Collapsed,
	}

	if p.ID == nil || *p.ID == "" {
		c.ID = uuid.NewString()
		stored, err := s.repo.Insert(ctx, reviewerKey, c)
		if err != nil {
			return nil, fmt.Errorf("inserting comment: %w", err)
		}
		return stored, nil
	}

	c.ID = *p.ID
	stored, err := s.repo.Update(ctx, reviewerKey, c)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return stored, nil
}

// Delete removes a comment. The freed num is never reassigned.
func (s *Service) Delete(ctx context.Context, reviewerKey, id string) error {
	if err := s.repo.Delete(ctx, reviewerKey, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}
