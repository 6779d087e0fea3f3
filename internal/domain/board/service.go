package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/repository"
	"github.com/google/uuid"
)

// Service handles the prioritization board: the fixed catalog of theme cards
// and the reviewer's own notes.
type Service struct {
	items  ItemRepository
	notes  NoteRepository
	logger *slog.Logger
}

// NewService creates a new board service.
func NewService(items ItemRepository, notes NoteRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{items: items, notes: notes, logger: logger}
}

// ListItems returns the stored board rows for a reviewer. Cards the reviewer
// has never dragged have no row; clients merge the result over DefaultLayout.
func (s *Service) ListItems(ctx context.Context, reviewerKey string) ([]api.BoardItem, error) {
	return s.items.List(ctx, reviewerKey)
}

// UpsertItem writes one catalog card's layout, keyed by (reviewer, item key).
// Catalog rows are never deleted, only overwritten.
func (s *Service) UpsertItem(ctx context.Context, reviewerKey string, p api.BoardUpsertParams) (*api.BoardItem, error) {
	if !ValidKey(p.ItemKey) {
		return nil, ErrUnknownItemKey
	}
	item := &api.BoardItem{
		ItemKey:   p.ItemKey,
		XPct:      api.ClampPct(p.XPct),
		YPct:      api.ClampPct(p.YPct),
		Zone:      p.Zone,
		Collapsed: p.Collapsed,
	}
	if item.Zone == "" {
		item.Zone = DefaultLayout[p.ItemKey].Zone
	}
	stored, err := s.items.Upsert(ctx, reviewerKey, item)
	if err != nil {
		return nil, fmt.Errorf("upserting board item: %w", err)
	}
	return stored, nil
}

// ListNotes returns the reviewer's board notes.
func (s *Service) ListNotes(ctx context.Context, reviewerKey string) ([]api.BoardNote, error) {
	return s.notes.List(ctx, reviewerKey)
}

// UpsertNote inserts or updates a board note; nil id means insert, and the
// returned row carries the server-assigned id.
func (s *Service) UpsertNote(ctx context.Context, reviewerKey string, p api.BoardNoteUpsertParams) (*api.BoardNote, error) {
	n := &api.BoardNote{
		XPct:      api.ClampPct(p.XPct),
		YPct:      api.ClampPct(p.YPct),
		Title:     p.Title,
		Body:      p.Body,
		Collapsed: p.Collapsed,
	}

	if p.ID == nil || *p.ID == "" {
		n.ID = uuid.NewString()
		stored, err := s.notes.Insert(ctx, reviewerKey, n)
		if err != nil {
			return nil, fmt.Errorf("inserting board note: %w", err)
		}
		return stored, nil
	}

	n.ID = *p.ID
	stored, err := s.notes.Update(ctx, reviewerKey, n)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("updating board note: %w", err)
	}
	return stored, nil
}

// DeleteNote removes a board note.
func (s *Service) DeleteNote(ctx context.Context, reviewerKey, id string) error {
	if err := s.notes.Delete(ctx, reviewerKey, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("deleting board note: %w", err)
	}
	return nil
}
