package reviewer

import (
	"context"
	"time"

	"github.com/easelhq/easel/api"
)

// Repository provides reviewer persistence.
type Repository interface {
	Create(ctx context.Context, rev *Reviewer) error
	GetByKey(ctx context.Context, key string) (*Reviewer, error)
	List(ctx context.Context) ([]Reviewer, error)
	Delete(ctx context.Context, key string) error
}

// CompletionRepository provides the per-reviewer done toggle.
type CompletionRepository interface {
	Get(ctx context.Context, reviewerKey string) (*api.Completion, error)
	Set(ctx context.Context, reviewerKey string, isDone bool, at time.Time) (*api.Completion, error)
}

// NoteRepository provides owner-authored interview notes.
type NoteRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.InterviewNote, error)
	Upsert(ctx context.Context, reviewerKey string, n *api.InterviewNote) (*api.InterviewNote, error)
}
