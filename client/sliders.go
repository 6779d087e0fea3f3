package client

import (
	"context"
	"fmt"

	"github.com/easelhq/easel/api"
)

// SlidersStore holds the reviewer's Likert ratings, keyed by section and
// item. A slider never stored renders at its neutral default; only touched
// sliders have rows.
type SlidersStore struct {
	rpc      RPC
	queue    *Queue
	session  *Session
	notifier Notifier

	rows *collection[api.Slider]
}

// NewSlidersStore creates the sliders store.
func NewSlidersStore(rpc RPC, queue *Queue, session *Session, notifier Notifier) *SlidersStore {
	if notifier == nil {
		notifier = defaultNotifier(nil)
	}
	return &SlidersStore{
		rpc:      rpc,
		queue:    queue,
		session:  session,
		notifier: notifier,
		rows:     newCollection(func(s api.Slider) string { return s.SectionKey + "/" + s.ItemKey }),
	}
}

// Load replaces local state with the server's rows.
func (s *SlidersStore) Load(ctx context.Context) error {
	if s.session.State() != SessionValid {
		return nil
	}
	var rows []api.Slider
	if err := s.rpc.Call(ctx, api.MethodSlidersList, nil, &rows); err != nil {
		return fmt.Errorf("loading sliders: %w", err)
	}
	s.rows.replaceAll(rows)
	s.notifier.Changed()
	return nil
}

// Value returns the stored rating, or the given default for an untouched
// slider.
func (s *SlidersStore) Value(sectionKey, itemKey string, def int) int {
	row, ok := s.rows.get(sectionKey + "/" + itemKey)
	if !ok {
		return def
	}
	return row.Value
}

// Set records a rating, clamped to the scale, and debounces the write so a
// drag along the track produces one save.
func (s *SlidersStore) Set(sectionKey, itemKey string, value int) {
	if !s.session.CanComment() {
		return
	}
	value = api.ClampValue(value)
	s.rows.upsert(api.Slider{SectionKey: sectionKey, ItemKey: itemKey, Value: value})
	s.notifier.Changed()

	key := "slider:" + sectionKey + "/" + itemKey
	s.queue.Enqueue(key, SavePosition, func(ctx context.Context) error {
		row, ok := s.rows.get(sectionKey + "/" + itemKey)
		if !ok {
			return nil
		}
		return s.rpc.Call(ctx, api.MethodSliderUpsert, api.SliderUpsertParams{
			SectionKey: row.SectionKey,
			ItemKey:    row.ItemKey,
			Value:      row.Value,
		}, nil)
	})
}
