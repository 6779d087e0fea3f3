package client

import (
	"context"
	"fmt"

	"github.com/easelhq/easel/api"
)

// SynthesisStore holds the free-text wrap-up box for each section.
type SynthesisStore struct {
	rpc      RPC
	queue    *Queue
	session  *Session
	notifier Notifier

	rows *collection[api.Synthesis]
}

// NewSynthesisStore creates the synthesis store.
func NewSynthesisStore(rpc RPC, queue *Queue, session *Session, notifier Notifier) *SynthesisStore {
	if notifier == nil {
		notifier = defaultNotifier(nil)
	}
	return &SynthesisStore{
		rpc:      rpc,
		queue:    queue,
		session:  session,
		notifier: notifier,
		rows:     newCollection(func(s api.Synthesis) string { return s.SectionKey }),
	}
}

// Load fetches one section's synthesis text. Sections load individually as
// they scroll into view.
func (s *SynthesisStore) Load(ctx context.Context, sectionKey string) error {
	if s.session.State() != SessionValid {
		return nil
	}
	var row api.Synthesis
	err := s.rpc.Call(ctx, api.MethodSynthesisGet, api.SynthesisGetParams{SectionKey: sectionKey}, &row)
	if err != nil {
		return fmt.Errorf("loading synthesis: %w", err)
	}
	s.rows.upsert(row)
	s.notifier.Changed()
	return nil
}

// Content returns the local text for a section.
func (s *SynthesisStore) Content(sectionKey string) string {
	row, ok := s.rows.get(sectionKey)
	if !ok {
		return ""
	}
	return row.Content
}

// SetContent replaces a section's text, debouncing the write so a typing
// burst produces one save carrying the final text.
func (s *SynthesisStore) SetContent(sectionKey, content string) {
	if !s.session.CanComment() {
		return
	}
	s.rows.upsert(api.Synthesis{SectionKey: sectionKey, Content: content})
	s.notifier.Changed()

	s.queue.Enqueue("synthesis:"+sectionKey, SaveText, func(ctx context.Context) error {
		row, ok := s.rows.get(sectionKey)
		if !ok {
			return nil
		}
		return s.rpc.Call(ctx, api.MethodSynthesisUpsert, api.SynthesisUpsertParams{
			SectionKey: row.SectionKey,
			Content:    row.Content,
		}, nil)
	})
}
