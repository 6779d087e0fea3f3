package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/repository"
)

// SliderRepository implements repository.SliderRepository for SQLite
type SliderRepository struct {
	db *DB
}

// NewSliderRepository creates a new SliderRepository
func NewSliderRepository(db *DB) *SliderRepository {
	return &SliderRepository{db: db}
}

// List returns all stored ratings for a reviewer.
func (r *SliderRepository) List(ctx context.Context, reviewerKey string) ([]api.Slider, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT section_key, item_key, value, updated_at
		FROM sliders
		WHERE reviewer = ?
	`, reviewerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list sliders: %w", err)
	}
	defer rows.Close()

	out := []api.Slider{}
	for rows.Next() {
		var s api.Slider
		if err := rows.Scan(&s.SectionKey, &s.ItemKey, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan slider: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Upsert writes one rating keyed by (reviewer, section_key, item_key).
func (r *SliderRepository) Upsert(ctx context.Context, reviewerKey string, s *api.Slider) (*api.Slider, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sliders (reviewer, section_key, item_key, value, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(reviewer, section_key, item_key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, reviewerKey, s.SectionKey, s.ItemKey, s.Value, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert slider: %w", err)
	}

	stored := *s
	stored.UpdatedAt = now
	return &stored, nil
}

// PanelRepository implements repository.PanelRepository for SQLite
type PanelRepository struct {
	db *DB
}

// NewPanelRepository creates a new PanelRepository
func NewPanelRepository(db *DB) *PanelRepository {
	return &PanelRepository{db: db}
}

const panelColumns = `section_key, item_key, title, text, collapsed, is_open, created_at, updated_at`

func scanPanel(row interface{ Scan(...any) error }) (*api.Panel, error) {
	var p api.Panel
	err := row.Scan(&p.SectionKey, &p.ItemKey, &p.Title, &p.Text, &p.Collapsed, &p.IsOpen, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all theme panels stored for a reviewer.
func (r *PanelRepository) List(ctx context.Context, reviewerKey string) ([]api.Panel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+panelColumns+` FROM theme_panels WHERE reviewer = ? ORDER BY created_at ASC`,
		reviewerKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list panels: %w", err)
	}
	defer rows.Close()

	out := []api.Panel{}
	for rows.Next() {
		p, err := scanPanel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan panel: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Get returns one panel or repository.ErrNotFound.
func (r *PanelRepository) Get(ctx context.Context, reviewerKey, sectionKey, itemKey string) (*api.Panel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+panelColumns+` FROM theme_panels WHERE reviewer = ? AND section_key = ? AND item_key = ?`,
		reviewerKey, sectionKey, itemKey)
	p, err := scanPanel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get panel: %w", err)
	}
	return p, nil
}

// Upsert writes a panel keyed by (reviewer, section_key, item_key). The
// original created_at is preserved on conflict.
func (r *PanelRepository) Upsert(ctx context.Context, reviewerKey string, p *api.Panel) (*api.Panel, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO theme_panels (reviewer, section_key, item_key, title, text, collapsed, is_open, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(reviewer, section_key, item_key) DO UPDATE SET
			title = excluded.title,
			text = excluded.text,
			collapsed = excluded.collapsed,
			is_open = excluded.is_open,
			updated_at = excluded.updated_at
	`, reviewerKey, p.SectionKey, p.ItemKey, p.Title, p.Text, p.Collapsed, p.IsOpen, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert panel: %w", err)
	}

	return r.Get(ctx, reviewerKey, p.SectionKey, p.ItemKey)
}

// Delete removes one panel row.
func (r *PanelRepository) Delete(ctx context.Context, reviewerKey, sectionKey, itemKey string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM theme_panels WHERE reviewer = ? AND section_key = ? AND item_key = ?`,
		reviewerKey, sectionKey, itemKey)
	if err != nil {
		return fmt.Errorf("failed to delete panel: %w", err)
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

// SynthesisRepository implements repository.SynthesisRepository for SQLite
type SynthesisRepository struct {
	db *DB
}

// NewSynthesisRepository creates a new SynthesisRepository
func NewSynthesisRepository(db *DB) *SynthesisRepository {
	return &SynthesisRepository{db: db}
}

// Get returns the synthesis text for a section or repository.ErrNotFound.
func (r *SynthesisRepository) Get(ctx context.Context, reviewerKey, sectionKey string) (*api.Synthesis, error) {
	var s api.Synthesis
	err := r.db.QueryRowContext(ctx, `
		SELECT section_key, content, updated_at
		FROM synthesis
		WHERE reviewer = ? AND section_key = ?
	`, reviewerKey, sectionKey).Scan(&s.SectionKey, &s.Content, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get synthesis: %w", err)
	}
	return &s, nil
}

// Upsert writes the synthesis text keyed by (reviewer, section_key).
func (r *SynthesisRepository) Upsert(ctx context.Context, reviewerKey string, s *api.Synthesis) (*api.Synthesis, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO synthesis (reviewer, section_key, content, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(reviewer, section_key) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
	`, reviewerKey, s.SectionKey, s.Content, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert synthesis: %w", err)
	}

	stored := *s
	stored.UpdatedAt = now
	return &stored, nil
}
