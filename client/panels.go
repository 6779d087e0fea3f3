package client

import (
	"context"
	"fmt"

	"github.com/easelhq/easel/api"
)

// PanelsStore holds the theme comment panels. A panel's collapsed flag is
// its durable minimized state; is_open records whether the panel was
// mounted at last navigation so an in-progress comment reopens on reload.
type PanelsStore struct {
	rpc      RPC
	queue    *Queue
	session  *Session
	notifier Notifier
	confirm  ConfirmFunc

	rows *collection[api.Panel]
}

// NewPanelsStore creates the panels store.
func NewPanelsStore(rpc RPC, queue *Queue, session *Session, notifier Notifier) *PanelsStore {
	if notifier == nil {
		notifier = defaultNotifier(nil)
	}
	return &PanelsStore{
		rpc:      rpc,
		queue:    queue,
		session:  session,
		notifier: notifier,
		rows:     newCollection(func(p api.Panel) string { return p.SectionKey + "/" + p.ItemKey }),
	}
}

// SetConfirm installs the destructive-action confirmation hook.
func (s *PanelsStore) SetConfirm(fn ConfirmFunc) {
	s.confirm = fn
}

func panelKey(sectionKey, itemKey string) string {
	return sectionKey + "/" + itemKey
}

// Load replaces local state with the server's rows.
func (s *PanelsStore) Load(ctx context.Context) error {
	if s.session.State() != SessionValid {
		return nil
	}
	var rows []api.Panel
	if err := s.rpc.Call(ctx, api.MethodPanelsList, nil, &rows); err != nil {
		return fmt.Errorf("loading panels: %w", err)
	}
	s.rows.replaceAll(rows)
	s.notifier.Changed()
	return nil
}

// Get returns one panel's local state.
func (s *PanelsStore) Get(sectionKey, itemKey string) (api.Panel, bool) {
	return s.rows.get(panelKey(sectionKey, itemKey))
}

// Resumable returns panels left open and not collapsed, the ones the host
// should remount after a reload.
func (s *PanelsStore) Resumable() []api.Panel {
	var out []api.Panel
	for _, p := range s.rows.snapshot() {
		if p.IsOpen && !p.Collapsed {
			out = append(out, p)
		}
	}
	return out
}

// Open mounts a panel: the server materializes the row if needed and marks
// it open, which also clears any durable collapse.
func (s *PanelsStore) Open(ctx context.Context, sectionKey, itemKey string) (api.Panel, error) {
	if !s.session.CanComment() {
		return api.Panel{}, nil
	}
	var stored api.Panel
	err := s.rpc.Call(ctx, api.MethodPanelOpenSet, api.PanelOpenSetParams{
		SectionKey: sectionKey,
		ItemKey:    itemKey,
		IsOpen:     true,
	}, &stored)
	if err != nil {
		return api.Panel{}, fmt.Errorf("opening panel: %w", err)
	}
	s.rows.upsert(stored)
	s.notifier.Changed()
	return stored, nil
}

// SetText replaces a panel's comment text. The write is debounced and the
// server keeps the stored open flag, so typing never re-opens a panel that
// was closed elsewhere.
func (s *PanelsStore) SetText(sectionKey, itemKey, text string) {
	if !s.session.CanComment() {
		return
	}
	key := panelKey(sectionKey, itemKey)
	if !s.rows.patch(key, func(p api.Panel) api.Panel {
		p.Text = text
		return p
	}) {
		return
	}
	s.notifier.Changed()

	s.queue.Enqueue("panel:"+key, SaveText, func(ctx context.Context) error {
		row, ok := s.rows.get(key)
		if !ok {
			return nil
		}
		return s.rpc.Call(ctx, api.MethodPanelUpsert, api.PanelUpsertParams{
			SectionKey: row.SectionKey,
			ItemKey:    row.ItemKey,
			Title:      row.Title,
			Text:       row.Text,
			Collapsed:  row.Collapsed,
		}, nil)
	})
}

// Collapse minimizes a panel durably. The panel will not auto-resume until
// it is opened again.
func (s *PanelsStore) Collapse(ctx context.Context, sectionKey, itemKey string) error {
	if !s.session.CanComment() {
		return nil
	}
	key := panelKey(sectionKey, itemKey)
	s.queue.Flush()
	s.rows.patch(key, func(p api.Panel) api.Panel {
		p.Collapsed = true
		p.IsOpen = false
		return p
	})
	s.notifier.Changed()

	err := s.rpc.Call(ctx, api.MethodPanelCollapse, api.PanelKeyParams{
		SectionKey: sectionKey,
		ItemKey:    itemKey,
	}, nil)
	if err != nil {
		return fmt.Errorf("collapsing panel: %w", err)
	}
	return nil
}

// SetOpen records whether the panel UI is mounted, without collapsing.
func (s *PanelsStore) SetOpen(ctx context.Context, sectionKey, itemKey string, open bool) error {
	if !s.session.CanComment() {
		return nil
	}
	key := panelKey(sectionKey, itemKey)
	s.rows.patch(key, func(p api.Panel) api.Panel {
		p.IsOpen = open
		if open {
			p.Collapsed = false
		}
		return p
	})
	s.notifier.Changed()

	err := s.rpc.Call(ctx, api.MethodPanelOpenSet, api.PanelOpenSetParams{
		SectionKey: sectionKey,
		ItemKey:    itemKey,
		IsOpen:     open,
	}, nil)
	if err != nil {
		return fmt.Errorf("setting panel open: %w", err)
	}
	return nil
}

// Delete removes a panel and its comment entirely.
func (s *PanelsStore) Delete(ctx context.Context, sectionKey, itemKey string) error {
	if !s.session.CanComment() {
		return nil
	}
	if !confirmed(ctx, s.confirm, "delete panel") {
		return nil
	}
	key := panelKey(sectionKey, itemKey)
	s.queue.Cancel("panel:" + key)

	err := s.rpc.Call(ctx, api.MethodPanelDelete, api.PanelKeyParams{
		SectionKey: sectionKey,
		ItemKey:    itemKey,
	}, nil)
	if err != nil {
		return fmt.Errorf("deleting panel: %w", err)
	}
	s.rows.remove(key)
	s.notifier.Changed()
	return nil
}
