package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/board"
	"github.com/google/uuid"
)

// BoardStore holds the prioritization board: the fixed catalog of theme
// cards and the reviewer's own notes. Cards always render; stored rows are
// merged over the default layout so an untouched card sits at its default
// position.
type BoardStore struct {
	rpc      RPC
	queue    *Queue
	session  *Session
	notifier Notifier
	confirm  ConfirmFunc

	items *collection[api.BoardItem]
	notes *collection[api.BoardNote]

	mu      sync.Mutex
	temp    map[string]bool
	doomed  map[string]bool
	renamed map[string]string
}

// NewBoardStore creates the board store with the default card layout.
func NewBoardStore(rpc RPC, queue *Queue, session *Session, notifier Notifier) *BoardStore {
	if notifier == nil {
		notifier = defaultNotifier(nil)
	}
	s := &BoardStore{
		rpc:      rpc,
		queue:    queue,
		session:  session,
		notifier: notifier,
		items:    newCollection(func(i api.BoardItem) string { return string(i.ItemKey) }),
		notes:    newCollection(func(n api.BoardNote) string { return n.ID }),
		temp:     map[string]bool{},
		doomed:   map[string]bool{},
		renamed:  map[string]string{},
	}
	s.items.replaceAll(defaultItems())
	return s
}

// SetConfirm installs the destructive-action confirmation hook.
func (s *BoardStore) SetConfirm(fn ConfirmFunc) {
	s.confirm = fn
}

func (s *BoardStore) resolveNote(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sid, ok := s.renamed[id]; ok {
		return sid
	}
	return id
}

func defaultItems() []api.BoardItem {
	out := make([]api.BoardItem, 0, len(api.BoardItemKeys))
	for _, key := range api.BoardItemKeys {
		def := board.DefaultLayout[key]
		out = append(out, api.BoardItem{
			ItemKey: key,
			XPct:    def.XPct,
			YPct:    def.YPct,
			Zone:    def.Zone,
		})
	}
	return out
}

// Load merges stored rows over the default layout and replaces notes.
func (s *BoardStore) Load(ctx context.Context) error {
	if s.session.State() != SessionValid {
		return nil
	}
	var stored []api.BoardItem
	if err := s.rpc.Call(ctx, api.MethodBoardList, nil, &stored); err != nil {
		return fmt.Errorf("loading board: %w", err)
	}
	merged := defaultItems()
	byKey := map[api.BoardItemKey]api.BoardItem{}
	for _, item := range stored {
		byKey[item.ItemKey] = item
	}
	for i, item := range merged {
		if row, ok := byKey[item.ItemKey]; ok {
			merged[i] = row
		}
	}
	s.items.replaceAll(merged)

	var notes []api.BoardNote
	if err := s.rpc.Call(ctx, api.MethodBoardNotesList, nil, &notes); err != nil {
		return fmt.Errorf("loading board notes: %w", err)
	}
	s.notes.replaceAll(notes)
	s.notifier.Changed()
	return nil
}

// Items returns all cards, stored or default, in catalog order.
func (s *BoardStore) Items() []api.BoardItem {
	return s.items.snapshot()
}

// Notes returns the reviewer's board notes.
func (s *BoardStore) Notes() []api.BoardNote {
	return s.notes.snapshot()
}

// MoveItem repositions a catalog card.
func (s *BoardStore) MoveItem(key api.BoardItemKey, pos Position) {
	if !s.session.CanComment() || !board.ValidKey(key) {
		return
	}
	s.items.patch(string(key), func(i api.BoardItem) api.BoardItem {
		i.XPct = pos.XPct
		i.YPct = pos.YPct
		return i
	})
	s.notifier.Changed()
	s.enqueueItem(key, SavePosition)
}

// SetItemZone moves a card between zones.
func (s *BoardStore) SetItemZone(key api.BoardItemKey, zone api.BoardZone) {
	if !s.session.CanComment() || !board.ValidKey(key) {
		return
	}
	s.items.patch(string(key), func(i api.BoardItem) api.BoardItem {
		i.Zone = zone
		return i
	})
	s.notifier.Changed()
	s.enqueueItem(key, SavePosition)
}

// ToggleItemCollapsed flips a card's collapsed state.
func (s *BoardStore) ToggleItemCollapsed(key api.BoardItemKey) {
	if !s.session.CanComment() || !board.ValidKey(key) {
		return
	}
	s.items.patch(string(key), func(i api.BoardItem) api.BoardItem {
		i.Collapsed = !i.Collapsed
		return i
	})
	s.notifier.Changed()
	s.enqueueItem(key, SaveCollapse)
}

func (s *BoardStore) enqueueItem(key api.BoardItemKey, reason SaveReason) {
	s.queue.Enqueue("board-item:"+string(key), reason, func(ctx context.Context) error {
		row, ok := s.items.get(string(key))
		if !ok {
			return nil
		}
		return s.rpc.Call(ctx, api.MethodBoardUpsert, api.BoardUpsertParams{
			ItemKey:   row.ItemKey,
			XPct:      row.XPct,
			YPct:      row.YPct,
			Zone:      row.Zone,
			Collapsed: row.Collapsed,
		}, nil)
	})
}

// CreateNoteAt adds a board note at the given position.
func (s *BoardStore) CreateNoteAt(pos Position) string {
	if !s.session.CanComment() {
		return ""
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.temp[id] = true
	s.mu.Unlock()

	s.notes.upsert(api.BoardNote{ID: id, XPct: pos.XPct, YPct: pos.YPct})
	s.notifier.Changed()
	s.enqueueNote(id, SaveCreate)
	return id
}

// MoveNote repositions a board note.
func (s *BoardStore) MoveNote(id string, pos Position) {
	if !s.session.CanComment() {
		return
	}
	id = s.resolveNote(id)
	if !s.notes.patch(id, func(n api.BoardNote) api.BoardNote {
		n.XPct = pos.XPct
		n.YPct = pos.YPct
		return n
	}) {
		return
	}
	s.notifier.Changed()
	s.enqueueNote(id, SavePosition)
}

// SetNoteContent replaces a note's title and body.
func (s *BoardStore) SetNoteContent(id, title, body string) {
	if !s.session.CanComment() {
		return
	}
	id = s.resolveNote(id)
	if !s.notes.patch(id, func(n api.BoardNote) api.BoardNote {
		n.Title = title
		n.Body = body
		return n
	}) {
		return
	}
	s.notifier.Changed()
	s.enqueueNote(id, SaveText)
}

// ToggleNoteCollapsed flips a note's collapsed state.
func (s *BoardStore) ToggleNoteCollapsed(id string) {
	if !s.session.CanComment() {
		return
	}
	id = s.resolveNote(id)
	if !s.notes.patch(id, func(n api.BoardNote) api.BoardNote {
		n.Collapsed = !n.Collapsed
		return n
	}) {
		return
	}
	s.notifier.Changed()
	s.enqueueNote(id, SaveCollapse)
}

// DeleteNote removes a board note. Unsaved notes are dropped locally with
// no server call.
func (s *BoardStore) DeleteNote(ctx context.Context, id string) error {
	if !s.session.CanComment() {
		return nil
	}
	if !confirmed(ctx, s.confirm, "delete board note") {
		return nil
	}
	id = s.resolveNote(id)

	s.mu.Lock()
	isTemp := s.temp[id]
	s.mu.Unlock()

	if isTemp {
		if s.queue.Pending(noteKey(id)) {
			s.queue.Cancel(noteKey(id))
			s.mu.Lock()
			delete(s.temp, id)
			s.mu.Unlock()
			s.notes.remove(id)
			s.notifier.Changed()
			return nil
		}
		s.mu.Lock()
		s.doomed[id] = true
		s.mu.Unlock()
		s.notes.remove(id)
		s.notifier.Changed()
		return nil
	}

	s.queue.Cancel(noteKey(id))
	if err := s.rpc.Call(ctx, api.MethodBoardNoteDelete, api.DeleteParams{ID: id}, nil); err != nil {
		return fmt.Errorf("deleting board note: %w", err)
	}
	s.notes.remove(id)
	s.notifier.Changed()
	return nil
}

func noteKey(id string) string {
	return "board-note:" + id
}

func (s *BoardStore) enqueueNote(id string, reason SaveReason) {
	s.queue.Enqueue(noteKey(id), reason, func(ctx context.Context) error {
		return s.saveNote(ctx, id)
	})
}

func (s *BoardStore) saveNote(ctx context.Context, id string) error {
	id = s.resolveNote(id)
	row, ok := s.notes.get(id)
	if !ok {
		s.mu.Lock()
		delete(s.doomed, id)
		delete(s.temp, id)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	isTemp := s.temp[id]
	s.mu.Unlock()

	params := api.BoardNoteUpsertParams{
		XPct:      row.XPct,
		YPct:      row.YPct,
		Title:     row.Title,
		Body:      row.Body,
		Collapsed: row.Collapsed,
	}
	if !isTemp {
		rid := row.ID
		params.ID = &rid
	}

	var stored api.BoardNote
	if err := s.rpc.Call(ctx, api.MethodBoardNoteUpsert, params, &stored); err != nil {
		return err
	}

	if isTemp {
		s.notes.patch(id, func(n api.BoardNote) api.BoardNote {
			n.ID = stored.ID
			n.CreatedAt = stored.CreatedAt
			n.UpdatedAt = stored.UpdatedAt
			return n
		})
		if adopted, ok := s.notes.get(id); ok {
			s.notes.replaceKey(id, adopted)
		}
		s.mu.Lock()
		delete(s.temp, id)
		doomed := s.doomed[id]
		delete(s.doomed, id)
		s.renamed[id] = stored.ID
		s.mu.Unlock()
		s.notifier.Changed()

		if doomed {
			s.notes.remove(stored.ID)
			return s.rpc.Call(ctx, api.MethodBoardNoteDelete, api.DeleteParams{ID: stored.ID}, nil)
		}
		return nil
	}

	s.notes.patch(id, func(n api.BoardNote) api.BoardNote {
		n.UpdatedAt = stored.UpdatedAt
		return n
	})
	return nil
}
