package comment

import (
	"context"

	"github.com/easelhq/easel/api"
)

// Repository provides comment persistence.
type Repository interface {
	List(ctx context.Context, reviewerKey string) ([]api.Comment, error)
	Get(ctx context.Context, reviewerKey, id string) (*api.Comment, error)
	Insert(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error)
	Update(ctx context.Context, reviewerKey string, c *api.Comment) (*api.Comment, error)
	Delete(ctx context.Context, reviewerKey, id string) error
}
