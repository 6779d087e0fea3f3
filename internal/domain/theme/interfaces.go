package theme

import (
	"context"

	"github.com/easelhq/easel/api"
)

// SliderRepository provides rating persistence.
type SliderRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.Slider, error)
	Upsert(ctx context.Context, reviewerKey string, s *api.Slider) (*api.Slider, error)
}

// PanelRepository provides theme panel persistence.
type PanelRepository interface {
	List(ctx context.Context, reviewerKey string) ([]api.Panel, error)
	Get(ctx context.Context, reviewerKey, sectionKey, itemKey string) (*api.Panel, error)
	Upsert(ctx context.Context, reviewerKey string, p *api.Panel) (*api.Panel, error)
	Delete(ctx context.Context, reviewerKey, sectionKey, itemKey string) error
}

// SynthesisRepository provides synthesis text persistence.
type SynthesisRepository interface {
	Get(ctx context.Context, reviewerKey, sectionKey string) (*api.Synthesis, error)
	Upsert(ctx context.Context, reviewerKey string, s *api.Synthesis) (*api.Synthesis, error)
}
