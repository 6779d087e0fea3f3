package repository

import (
	"context"
	"time"

	"github.com/easelhq/easel/api"
)

// Reviewer storage lives on the reviewer package's own Repository interface;
// the reviewer key passed to every repository here is that token hash.

// CommentRepository manages freeform positioned comments.
type CommentRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.Comment, error)
	Get(ctx context.Context, reviewerKey, id string) (*api.Comment, error)
	// Insert assigns the next per-reviewer num and returns the stored row.
	Insert(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error)
	Update(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error)
	Delete(ctx context.Context, reviewerKey, id string) error
}

// BoardItemRepository manages the fixed-catalog board layout.
type BoardItemRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.BoardItem, error)
	Upsert(ctx context.Context, reviewerKey string, item *api.BoardItem) (*api.BoardItem, error)
}

// BoardNoteRepository manages reviewer-authored board notes.
type BoardNoteRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.BoardNote, error)
	Insert(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error)
	Update(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error)
	Delete(ctx context.Context, reviewerKey, id string) error
}

// SliderRepository manages Likert ratings.
type SliderRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.Slider, error)
	Upsert(ctx context.Context, reviewerKey string, s *api.Slider) (*api.Slider, error)
}

// PanelRepository manages theme comment panels.
type PanelRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.Panel, error)
	Get(ctx context.Context, reviewerKey, sectionKey, itemKey string) (*api.Panel, error)
	Upsert(ctx context.Context, reviewerKey string, p *api.Panel) (*api.Panel, error)
	Delete(ctx context.Context, reviewerKey, sectionKey, itemKey string) error
}

// SynthesisRepository manages per-section synthesis text.
type SynthesisRepository interface {
	Get(ctx context.Context, reviewerKey, sectionKey string) (*api.Synthesis, error)
	Upsert(ctx context.Context, reviewerKey string, s *api.Synthesis) (*api.Synthesis, error)
}

// CompletionRepository manages the per-reviewer done toggle.
type CompletionRepository interface {
	Get(ctx context.Context, reviewerKey string) (*api.Completion, error)
	Set(ctx context.Context, reviewerKey string, isDone bool, at time.Time) (*api.Completion, error)
}

// InterviewNoteRepository manages owner-authored per-chapter notes.
type InterviewNoteRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.InterviewNote, error)
	Upsert(ctx context.Context, reviewerKey string, n *api.InterviewNote) (*api.InterviewNote, error)
}
