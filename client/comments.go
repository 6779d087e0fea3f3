package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/easelhq/easel/api"
	"github.com/google/uuid"
)

// CommentsStore holds the reviewer's positioned comments. All mutations are
// optimistic: the local row changes immediately and the write is debounced.
// Read-only sessions get silent no-ops.
type CommentsStore struct {
	rpc      RPC
	queue    *Queue
	session  *Session
	notifier Notifier
	confirm  ConfirmFunc

	rows *collection[api.Comment]

	mu      sync.Mutex
	temp    map[string]bool   // ids not yet persisted
	doomed  map[string]bool   // deleted while the create was in flight
	renamed map[string]string // temp id -> server id, for edits made mid-insert
}

// NewCommentsStore creates the comments store.
func NewCommentsStore(rpc RPC, queue *Queue, session *Session, notifier Notifier) *CommentsStore {
	if notifier == nil {
		notifier = defaultNotifier(nil)
	}
	return &CommentsStore{
		rpc:      rpc,
		queue:    queue,
		session:  session,
		notifier: notifier,
		rows:     newCollection(func(c api.Comment) string { return c.ID }),
		temp:     map[string]bool{},
		doomed:   map[string]bool{},
		renamed:  map[string]string{},
	}
}

// SetConfirm installs the destructive-action confirmation hook.
func (s *CommentsStore) SetConfirm(fn ConfirmFunc) {
	s.confirm = fn
}

// resolve maps a temporary id to the server id once the insert has landed,
// so callers still holding the temp id keep addressing the same row.
func (s *CommentsStore) resolve(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sid, ok := s.renamed[id]; ok {
		return sid
	}
	return id
}

// Load replaces local state with the server's rows.
func (s *CommentsStore) Load(ctx context.Context) error {
	if s.session.State() != SessionValid {
		return nil
	}
	var rows []api.Comment
	if err := s.rpc.Call(ctx, api.MethodCommentsList, nil, &rows); err != nil {
		return fmt.Errorf("loading comments: %w", err)
	}
	s.rows.replaceAll(rows)
	s.notifier.Changed()
	return nil
}

// Snapshot returns the current rows for rendering.
func (s *CommentsStore) Snapshot() []api.Comment {
	return s.rows.snapshot()
}

// IsPending reports whether a comment has not been persisted yet. Hosts
// render a placeholder instead of the num until the insert lands.
func (s *CommentsStore) IsPending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.temp[id]
}

// MoveTo repositions a comment.
func (s *CommentsStore) MoveTo(id string, pos Position) {
	if !s.session.CanComment() {
		return
	}
	id = s.resolve(id)
	if !s.rows.patch(id, func(c api.Comment) api.Comment {
		c.XPct = pos.XPct
		c.YPct = pos.YPct
		return c
	}) {
		return
	}
	s.notifier.Changed()
	s.enqueue(id, SavePosition)
}

// CreateAt adds a comment at the given position and returns its temporary
// id. The id is replaced by the server identity when the insert lands.
func (s *CommentsStore) CreateAt(pos Position) string {
	if !s.session.CanComment() {
		return ""
	}
	id := uuid.NewString()
	s.mu.Lock()
	s.temp[id] = true
	s.mu.Unlock()

	s.rows.upsert(api.Comment{ID: id, XPct: pos.XPct, YPct: pos.YPct})
	s.notifier.Changed()
	s.enqueue(id, SaveCreate)
	return id
}

// SetText replaces a comment's text.
func (s *CommentsStore) SetText(id, text string) {
	if !s.session.CanComment() {
		return
	}
	id = s.resolve(id)
	if !s.rows.patch(id, func(c api.Comment) api.Comment {
		c.Text = text
		return c
	}) {
		return
	}
	s.notifier.Changed()
	s.enqueue(id, SaveText)
}

// ToggleCollapsed flips a comment's collapsed state.
func (s *CommentsStore) ToggleCollapsed(id string) {
	if !s.session.CanComment() {
		return
	}
	id = s.resolve(id)
	if !s.rows.patch(id, func(c api.Comment) api.Comment {
		c.Collapsed = !c.Collapsed
		return c
	}) {
		return
	}
	s.notifier.Changed()
	s.enqueue(id, SaveCollapse)
}

// Delete removes a comment. A comment deleted before its insert ever fired
// is dropped locally with no server call at all.
func (s *CommentsStore) Delete(ctx context.Context, id string) error {
	if !s.session.CanComment() {
		return nil
	}
	if !confirmed(ctx, s.confirm, "delete comment") {
		return nil
	}
	id = s.resolve(id)

	s.mu.Lock()
	isTemp := s.temp[id]
	s.mu.Unlock()

	if isTemp {
		if s.queue.Pending(commentKey(id)) {
			// The insert never fired: cancel it and forget the row.
			s.queue.Cancel(commentKey(id))
			s.mu.Lock()
			delete(s.temp, id)
			s.mu.Unlock()
			s.rows.remove(id)
			s.notifier.Changed()
			return nil
		}
		// Insert in flight: remove locally now, delete server-side once the
		// insert lands and the real id is known.
		s.mu.Lock()
		s.doomed[id] = true
		s.mu.Unlock()
		s.rows.remove(id)
		s.notifier.Changed()
		return nil
	}

	// A persisted row comes off the page only once the server confirms;
	// otherwise it would silently reappear on the next load.
	s.queue.Cancel(commentKey(id))
	if err := s.rpc.Call(ctx, api.MethodCommentDelete, api.DeleteParams{ID: id}, nil); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	s.rows.remove(id)
	s.notifier.Changed()
	return nil
}

// Flush forces all pending comment writes out now.
func (s *CommentsStore) Flush() {
	s.queue.Flush()
}

func commentKey(id string) string {
	return "comment:" + id
}

func (s *CommentsStore) enqueue(id string, reason SaveReason) {
	s.queue.Enqueue(commentKey(id), reason, func(ctx context.Context) error {
		return s.save(ctx, id)
	})
}

// save reads the live row at fire time so the newest edit always wins.
func (s *CommentsStore) save(ctx context.Context, id string) error {
	id = s.resolve(id)
	row, ok := s.rows.get(id)
	if !ok {
		s.mu.Lock()
		doomed := s.doomed[id]
		s.mu.Unlock()
		if !doomed {
			return nil
		}
		// Row already removed locally but the create was committed to fire:
		// nothing to write.
		s.mu.Lock()
		delete(s.doomed, id)
		delete(s.temp, id)
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	isTemp := s.temp[id]
	s.mu.Unlock()

	params := api.CommentUpsertParams{
		XPct:      row.XPct,
		YPct:      row.YPct,
		Text:      row.Text,
		Collapsed: row.Collapsed,
	}
	if !isTemp {
		rid := row.ID
		params.ID = &rid
	}

	var stored api.Comment
	if err := s.rpc.Call(ctx, api.MethodCommentUpsert, params, &stored); err != nil {
		return err
	}

	if isTemp {
		// Adopt the server identity; local edits made during the flight win
		// over the echoed content.
		s.rows.patch(id, func(c api.Comment) api.Comment {
			c.ID = stored.ID
			c.Num = stored.Num
			c.CreatedAt = stored.CreatedAt
			c.UpdatedAt = stored.UpdatedAt
			return c
		})
		if adopted, ok := s.rows.get(id); ok {
			s.rows.replaceKey(id, adopted)
		}
		s.mu.Lock()
		delete(s.temp, id)
		doomed := s.doomed[id]
		delete(s.doomed, id)
		s.renamed[id] = stored.ID
		s.mu.Unlock()
		s.notifier.Changed()

		if doomed {
			s.rows.remove(stored.ID)
			return s.rpc.Call(ctx, api.MethodCommentDelete, api.DeleteParams{ID: stored.ID}, nil)
		}
		return nil
	}

	s.rows.patch(id, func(c api.Comment) api.Comment {
		c.UpdatedAt = stored.UpdatedAt
		return c
	})
	return nil
}
