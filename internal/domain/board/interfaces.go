package board

import (
	"context"

	"github.com/easelhq/easel/api"
)

// ItemRepository provides persistence for the fixed-catalog layout.
type ItemRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.BoardItem, error)
	Upsert(ctx context.Context, reviewerKey string, item *api.BoardItem) (*api.BoardItem, error)
}

// NoteRepository provides persistence for reviewer-authored notes.
type NoteRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.BoardNote, error)
	Insert(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error)
	Update(ctx context.Context, reviewerKey string, n *api.BoardNote) (*api.BoardNote, error)
	Delete(ctx context.Context, reviewerKey, id string) error
}
