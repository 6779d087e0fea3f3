package reviewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/repository"
	"github.com/google/uuid"
)

// Service handles reviewer registration, token resolution, and the
// review-completion toggle.
type Service struct {
	repo        Repository
	completions CompletionRepository
	notes       NoteRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewService creates a new reviewer service.
func NewService(repo Repository, completions CompletionRepository, notes NoteRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:        repo,
		completions: completions,
		notes:       notes,
		logger:      logger,
		now:         time.Now,
	}
}

// RegisterRequest defines reviewer registration inputs.
type RegisterRequest struct {
	Label      string
	CanComment bool
	TTL        time.Duration // zero means no expiry
}

// Register creates a reviewer and returns the plaintext invite token. The
// token is shown exactly once; only its hash is stored.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Reviewer, string, error) {
	if strings.TrimSpace(req.Label) == "" {
		return nil, "", ErrInvalidInput
	}

	token := uuid.NewString()
	rev := &Reviewer{
		Key:        HashToken(token),
		Label:      strings.TrimSpace(req.Label),
		CanComment: req.CanComment,
		CreatedAt:  s.now(),
	}
	if req.TTL > 0 {
		exp := rev.CreatedAt.Add(req.TTL)
		rev.ExpiresAt = &exp
	}

	if err := s.repo.Create(ctx, rev); err != nil {
		return nil, "", fmt.Errorf("registering reviewer: %w", err)
	}

	s.logger.Info("reviewer registered", "label", rev.Label, "can_comment", rev.CanComment)
	return rev, token, nil
}

// Resolve maps a bearer token to the reviewer it identifies. Unknown and
// expired tokens return distinct sentinel errors; callers surface both as
// the read-only "invalid link" state.
func (s *Service) Resolve(ctx context.Context, token string) (*Reviewer, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrUnknownToken
	}

	rev, err := s.repo.GetByKey(ctx, HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownToken
		}
		return nil, fmt.Errorf("resolving token: %w", err)
	}
	if rev.Expired(s.now()) {
		return nil, ErrExpiredToken
	}
	return rev, nil
}

// Status returns the banner-facing view of a resolved reviewer.
func (s *Service) Status(rev *Reviewer) api.ReviewerStatus {
	return api.ReviewerStatus{Label: rev.Label, CanComment: rev.CanComment}
}

// List returns all registered reviewers.
func (s *Service) List(ctx context.Context) ([]Reviewer, error) {
	return s.repo.List(ctx)
}

// Revoke removes a reviewer registration. Entity rows keyed by the reviewer
// remain; they are simply unreachable without a resolving token.
func (s *Service) Revoke(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownToken
		}
		return fmt.Errorf("revoking reviewer: %w", err)
	}
	return nil
}

// Completion returns the reviewer's done toggle, defaulting to not-done when
// no row exists yet.
func (s *Service) Completion(ctx context.Context, reviewerKey string) (*api.Completion, error) {
	c, err := s.completions.Get(ctx, reviewerKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &api.Completion{IsDone: false}, nil
		}
		return nil, fmt.Errorf("getting completion: %w", err)
	}
	return c, nil
}

// SetCompletion writes the done toggle.
func (s *Service) SetCompletion(ctx context.Context, reviewerKey string, isDone bool) (*api.Completion, error) {
	c, err := s.completions.Set(ctx, reviewerKey, isDone, s.now())
	if err != nil {
		return nil, fmt.Errorf("setting completion: %w", err)
	}
	return c, nil
}

// InterviewNotes returns the owner-authored chapter notes for a reviewer,
// ordered by sort order. Missing rows are an empty slice, never an error.
func (s *Service) InterviewNotes(ctx context.Context, reviewerKey string) ([]api.InterviewNote, error) {
	notes, err := s.notes.List(ctx, reviewerKey)
	if err != nil {
		return nil, fmt.Errorf("listing interview notes: %w", err)
	}
	return notes, nil
}

// PutInterviewNote stores one owner-authored chapter note.
func (s *Service) PutInterviewNote(ctx context.Context, reviewerKey string, n api.InterviewNote) (*api.InterviewNote, error) {
	if strings.TrimSpace(n.ChapterKey) == "" {
		return nil, ErrInvalidInput
	}
	stored, err := s.notes.Upsert(ctx, reviewerKey, &n)
	if err != nil {
		return nil, fmt.Errorf("storing interview note: %w", err)
	}
	return stored, nil
}
