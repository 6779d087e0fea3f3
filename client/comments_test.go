package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/easelhq/easel/api"
)

func TestCommentsStore_Load(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentsList, func(json.RawMessage) (any, error) {
		return []api.Comment{
			{ID: "c-1", Num: 1, XPct: 10, YPct: 20, Text: "first"},
			{ID: "c-2", Num: 2, XPct: 30, YPct: 40, Text: "second"},
		}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)

	require.NoError(t, s.Load(context.Background()))
	rows := s.Snapshot()
	require.Len(t, rows, 2)
	require.Equal(t, "c-1", rows[0].ID)
	require.Equal(t, 2, rows[1].Num)
}

func TestCommentsStore_CreateAdoptsServerIdentity(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentUpsert, func(raw json.RawMessage) (any, error) {
		p := decodeParams[api.CommentUpsertParams](t, raw)
		require.Nil(t, p.ID, "a first save is an insert")
		return api.Comment{ID: "srv-1", Num: 7, XPct: p.XPct, YPct: p.YPct, Text: p.Text, CreatedAt: time.Now()}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)

	id := s.CreateAt(Position{XPct: 25, YPct: 75})
	require.NotEmpty(t, id)
	require.True(t, s.IsPending(id))

	s.Flush()

	rows := s.Snapshot()
	require.Len(t, rows, 1)
	require.Equal(t, "srv-1", rows[0].ID)
	require.Equal(t, 7, rows[0].Num)
	require.False(t, s.IsPending(id))
	require.False(t, s.IsPending("srv-1"))
}

func TestCommentsStore_LocalEditDuringCreateWins(t *testing.T) {
	rpc := newFakeRPC()
	var insertOnce sync.Once
	started := make(chan struct{})
	release := make(chan struct{})
	rpc.handle(api.MethodCommentUpsert, func(raw json.RawMessage) (any, error) {
		p := decodeParams[api.CommentUpsertParams](t, raw)
		if p.ID == nil {
			insertOnce.Do(func() { close(started) })
			<-release
			return api.Comment{ID: "srv-1", Num: 1, XPct: p.XPct, YPct: p.YPct, Text: p.Text}, nil
		}
		return api.Comment{ID: *p.ID, Num: 1, XPct: p.XPct, YPct: p.YPct, Text: p.Text}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)

	id := s.CreateAt(Position{XPct: 10, YPct: 10})
	done := make(chan struct{})
	go func() {
		s.Flush()
		close(done)
	}()
	<-started
	s.SetText(id, "typed while saving")
	close(release)
	<-done

	rows := s.Snapshot()
	require.Len(t, rows, 1)
	require.Equal(t, "srv-1", rows[0].ID)
	require.Equal(t, "typed while saving", rows[0].Text, "the echoed insert must not clobber newer local edits")

	// The edit made mid-insert is still queued; flushing it persists the
	// final text under the server id.
	s.Flush()
	upserts := rpc.callsFor(api.MethodCommentUpsert)
	require.Len(t, upserts, 2)
	last := decodeParams[api.CommentUpsertParams](t, upserts[1].params)
	require.NotNil(t, last.ID)
	require.Equal(t, "srv-1", *last.ID)
	require.Equal(t, "typed while saving", last.Text)
}

func TestCommentsStore_BurstOfMovesSavesOnce(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentsList, func(json.RawMessage) (any, error) {
		return []api.Comment{{ID: "c-1", Num: 1, XPct: 5, YPct: 5}}, nil
	})
	rpc.handle(api.MethodCommentUpsert, func(raw json.RawMessage) (any, error) {
		p := decodeParams[api.CommentUpsertParams](t, raw)
		return api.Comment{ID: *p.ID, Num: 1, XPct: p.XPct, YPct: p.YPct}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)
	require.NoError(t, s.Load(context.Background()))

	for i := 1; i <= 20; i++ {
		s.MoveTo("c-1", Position{XPct: float64(i), YPct: float64(i * 2)})
	}
	s.Flush()

	upserts := rpc.callsFor(api.MethodCommentUpsert)
	require.Len(t, upserts, 1, "a drag burst produces one write")
	p := decodeParams[api.CommentUpsertParams](t, upserts[0].params)
	require.NotNil(t, p.ID)
	require.Equal(t, "c-1", *p.ID)
	require.Equal(t, 20.0, p.XPct)
	require.Equal(t, 40.0, p.YPct)
}

func TestCommentsStore_DeleteBeforeFirstSave(t *testing.T) {
	rpc := newFakeRPC()
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)
	before := rpc.callCount()

	id := s.CreateAt(Position{XPct: 50, YPct: 50})
	require.NoError(t, s.Delete(context.Background(), id))

	s.Flush()
	require.Empty(t, s.Snapshot())
	require.Equal(t, before, rpc.callCount(), "an unsaved comment deletes with no server call")
}

func TestCommentsStore_DeleteDuringCreateInFlight(t *testing.T) {
	rpc := newFakeRPC()
	started := make(chan struct{})
	release := make(chan struct{})
	rpc.handle(api.MethodCommentUpsert, func(raw json.RawMessage) (any, error) {
		p := decodeParams[api.CommentUpsertParams](t, raw)
		close(started)
		<-release
		return api.Comment{ID: "srv-9", Num: 1, XPct: p.XPct, YPct: p.YPct}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)

	id := s.CreateAt(Position{XPct: 1, YPct: 2})
	done := make(chan struct{})
	go func() {
		s.Flush()
		close(done)
	}()
	<-started
	require.NoError(t, s.Delete(context.Background(), id))
	require.Empty(t, s.Snapshot())
	close(release)
	<-done

	// Once the insert lands the row is deleted server-side by its real id.
	deletes := rpc.callsFor(api.MethodCommentDelete)
	require.Len(t, deletes, 1)
	require.Equal(t, "srv-9", decodeParams[api.DeleteParams](t, deletes[0].params).ID)
	require.Empty(t, s.Snapshot())
}

func TestCommentsStore_DeletePersisted(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentsList, func(json.RawMessage) (any, error) {
		return []api.Comment{{ID: "c-1", Num: 1}}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)
	require.NoError(t, s.Load(context.Background()))

	s.SetText("c-1", "about to go")
	require.NoError(t, s.Delete(context.Background(), "c-1"))
	s.Flush()

	require.Empty(t, s.Snapshot())
	require.Empty(t, rpc.callsFor(api.MethodCommentUpsert), "a pending edit dies with its row")
	deletes := rpc.callsFor(api.MethodCommentDelete)
	require.Len(t, deletes, 1)
	require.Equal(t, "c-1", decodeParams[api.DeleteParams](t, deletes[0].params).ID)
}

func TestCommentsStore_DeleteKeepsRowWhenRemoteFails(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentsList, func(json.RawMessage) (any, error) {
		return []api.Comment{{ID: "c-1", Num: 1, Text: "still here"}}, nil
	})
	rpc.handle(api.MethodCommentDelete, func(json.RawMessage) (any, error) {
		return nil, errors.New("server unavailable")
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)
	require.NoError(t, s.Load(context.Background()))

	require.Error(t, s.Delete(context.Background(), "c-1"))
	rows := s.Snapshot()
	require.Len(t, rows, 1, "a row leaves the page only once the server confirms")
	require.Equal(t, "still here", rows[0].Text)
}

func TestCommentsStore_DeleteDeclinedByConfirm(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentsList, func(json.RawMessage) (any, error) {
		return []api.Comment{{ID: "c-1", Num: 1}}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)
	require.NoError(t, s.Load(context.Background()))
	before := rpc.callCount()

	s.SetConfirm(func(context.Context, string) bool { return false })
	require.NoError(t, s.Delete(context.Background(), "c-1"))

	require.Len(t, s.Snapshot(), 1)
	require.Equal(t, before, rpc.callCount(), "a declined confirm fires nothing")
}

func TestCommentsStore_ToggleCollapsedPairsAreIdempotent(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentsList, func(json.RawMessage) (any, error) {
		return []api.Comment{{ID: "c-1", Num: 1, Collapsed: true}}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, true), nil)
	require.NoError(t, s.Load(context.Background()))

	s.ToggleCollapsed("c-1")
	require.False(t, s.Snapshot()[0].Collapsed)
	s.ToggleCollapsed("c-1")
	require.True(t, s.Snapshot()[0].Collapsed)
}

func TestCommentsStore_ReadOnlyNoOps(t *testing.T) {
	rpc := newFakeRPC()
	rpc.handle(api.MethodCommentsList, func(json.RawMessage) (any, error) {
		return []api.Comment{{ID: "c-1", Num: 1, Text: "visible"}}, nil
	})
	s := NewCommentsStore(rpc, testQueue(t), validSession(t, rpc, false), nil)
	require.NoError(t, s.Load(context.Background()))
	before := rpc.callCount()

	require.Empty(t, s.CreateAt(Position{XPct: 10, YPct: 10}))
	s.MoveTo("c-1", Position{XPct: 99, YPct: 99})
	s.SetText("c-1", "changed")
	require.NoError(t, s.Delete(context.Background(), "c-1"))
	s.Flush()

	rows := s.Snapshot()
	require.Len(t, rows, 1)
	require.Equal(t, "visible", rows[0].Text)
	require.Equal(t, before, rpc.callCount())
}
