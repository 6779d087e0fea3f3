package theme

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/repository"
)

// DefaultPanelTitle is used when a panel is created without one.
const DefaultPanelTitle = "Comment"

// Service handles per-theme feedback: sliders, comment panels, and the
// synthesis text box.
type Service struct {
	sliders   SliderRepository
	panels    PanelRepository
	synthesis SynthesisRepository
	logger    *slog.Logger
}

// NewService creates a new theme service.
func NewService(sliders SliderRepository, panels PanelRepository, synthesis SynthesisRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sliders: sliders, panels: panels, synthesis: synthesis, logger: logger}
}

func validKeys(sectionKey, itemKey string) error {
	if strings.TrimSpace(sectionKey) == "" || strings.TrimSpace(itemKey) == "" {
		return ErrInvalidKey
	}
	return nil
}

// ListSliders returns all stored ratings for a reviewer.
func (s *Service) ListSliders(ctx context.Context, reviewerKey string) ([]api.Slider, error) {
	return s.sliders.List(ctx, reviewerKey)
}

// UpsertSlider writes one rating, clamped to the 0..100 scale.
func (s *Service) UpsertSlider(ctx context.Context, reviewerKey string, p api.SliderUpsertParams) (*api.Slider, error) {
	if err := validKeys(p.SectionKey, p.ItemKey); err != nil {
		return nil, err
	}
	row := &api.Slider{
		SectionKey: p.SectionKey,
		ItemKey:    p.ItemKey,
		Value:      api.ClampValue(p.Value),
	}
	stored, err := s.sliders.Upsert(ctx, reviewerKey, row)
	if err != nil {
		return nil, fmt.Errorf("upserting slider: %w", err)
	}
	return stored, nil
}

// ListPanels returns all theme panels for a reviewer. Clients use this on
// mount to auto-resume panels left open (is_open and not collapsed).
func (s *Service) ListPanels(ctx context.Context, reviewerKey string) ([]api.Panel, error) {
	return s.panels.List(ctx, reviewerKey)
}

// GetPanel returns the panel for a theme, lazily materializing an empty row
// on first access so the popover always has something to edit.
func (s *Service) GetPanel(ctx context.Context, reviewerKey, sectionKey, itemKey string) (*api.Panel, error) {
	if err := validKeys(sectionKey, itemKey); err != nil {
		return nil, err
	}
	p, err := s.panels.Get(ctx, reviewerKey, sectionKey, itemKey)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("getting panel: %w", err)
	}

	created := &api.Panel{
		SectionKey: sectionKey,
		ItemKey:    itemKey,
		Title:      DefaultPanelTitle,
	}
	stored, err := s.panels.Upsert(ctx, reviewerKey, created)
	if err != nil {
		return nil, fmt.Errorf("creating panel: %w", err)
	}
	return stored, nil
}

// UpsertPanel writes a panel's content. The is_open flag is preserved from
// the stored row; content writes must not re-open a closed panel.
func (s *Service) UpsertPanel(ctx context.Context, reviewerKey string, p api.PanelUpsertParams) (*api.Panel, error) {
	if err := validKeys(p.SectionKey, p.ItemKey); err != nil {
		return nil, err
	}
	title := p.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultPanelTitle
	}

	row := &api.Panel{
		SectionKey: p.SectionKey,
		ItemKey:    p.ItemKey,
		Title:      title,
		Text:       p.Text,
		Collapsed:  p.Collapsed,
	}
	if existing, err := s.panels.Get(ctx, reviewerKey, p.SectionKey, p.ItemKey); err == nil {
		row.IsOpen = existing.IsOpen
	}

	stored, err := s.panels.Upsert(ctx, reviewerKey, row)
	if err != nil {
		return nil, fmt.Errorf("upserting panel: %w", err)
	}
	return stored, nil
}

// CollapsePanel minimizes a panel durably: collapsed=true also clears
// is_open so the panel does not auto-expand on the next page load.
func (s *Service) CollapsePanel(ctx context.Context, reviewerKey, sectionKey, itemKey string, collapsed bool) (*api.Panel, error) {
	existing, err := s.panels.Get(ctx, reviewerKey, sectionKey, itemKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPanelNotFound
		}
		return nil, fmt.Errorf("getting panel: %w", err)
	}

	existing.Collapsed = collapsed
	if collapsed {
		existing.IsOpen = false
	}
	stored, err := s.panels.Upsert(ctx, reviewerKey, existing)
	if err != nil {
		return nil, fmt.Errorf("collapsing panel: %w", err)
	}
	return stored, nil
}

// SetPanelOpen records whether the panel UI is currently mounted. Opening a
// panel clears the durable collapsed state.
func (s *Service) SetPanelOpen(ctx context.Context, reviewerKey, sectionKey, itemKey string, isOpen bool) (*api.Panel, error) {
	existing, err := s.GetPanel(ctx, reviewerKey, sectionKey, itemKey)
	if err != nil {
		return nil, err
	}

	existing.IsOpen = isOpen
	if isOpen {
		existing.Collapsed = false
	}
	stored, err := s.panels.Upsert(ctx, reviewerKey, existing)
	if err != nil {
		return nil, fmt.Errorf("setting panel open: %w", err)
	}
	return stored, nil
}

// DeletePanel removes the panel row entirely.
func (s *Service) DeletePanel(ctx context.Context, reviewerKey, sectionKey, itemKey string) error {
	if err := s.panels.Delete(ctx, reviewerKey, sectionKey, itemKey); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPanelNotFound
		}
		return fmt.Errorf("deleting panel: %w", err)
	}
	return nil
}

// GetSynthesis returns the synthesis text for a section, defaulting to an
// empty row when none exists.
func (s *Service) GetSynthesis(ctx context.Context, reviewerKey, sectionKey string) (*api.Synthesis, error) {
	row, err := s.synthesis.Get(ctx, reviewerKey, sectionKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &api.Synthesis{SectionKey: sectionKey}, nil
		}
		return nil, fmt.Errorf("getting synthesis: %w", err)
	}
	return row, nil
}

// UpsertSynthesis writes the synthesis text for a section.
func (s *Service) UpsertSynthesis(ctx context.Context, reviewerKey string, p api.SynthesisUpsertParams) (*api.Synthesis, error) {
	if strings.TrimSpace(p.SectionKey) == "" {
		return nil, ErrInvalidKey
	}
	row := &api.Synthesis{SectionKey: p.SectionKey, Content: p.Content}
	stored, err := s.synthesis.Upsert(ctx, reviewerKey, row)
	if err != nil {
		return nil, fmt.Errorf("upserting synthesis: %w", err)
	}
	return stored, nil
}
