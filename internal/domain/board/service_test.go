package board_test

import (
	"context"
	"testing"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/board"
	"github.com/easelhq/easel/internal/repository"
	"github.com/easelhq/easel/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBoardService_UpsertItemRejectsUnknownKey(t *testing.T) {
	svc := board.NewService(&mocks.BoardItemRepository{}, &mocks.BoardNoteRepository{}, nil)
	_, err := svc.UpsertItem(context.Background(), "rev1", api.BoardUpsertParams{ItemKey: "made-up"})
	require.Equal(t, board.ErrUnknownItemKey, err)
}

func TestBoardService_UpsertItemClampsAndDefaultsZone(t *testing.T) {
	ctx := context.Background()
	items := &mocks.BoardItemRepository{}
	items.On("Upsert", ctx, "rev1", mock.MatchedBy(func(i *api.BoardItem) bool {
		return i.XPct == 100 && i.YPct == 0 && i.Zone == api.ZoneSupporting
	})).Return(&api.BoardItem{ItemKey: api.BoardCulture, XPct: 100, YPct: 0, Zone: api.ZoneSupporting}, nil)

	svc := board.NewService(items, &mocks.BoardNoteRepository{}, nil)
	_, err := svc.UpsertItem(ctx, "rev1", api.BoardUpsertParams{ItemKey: api.BoardCulture, XPct: 120, YPct: -3})
	require.NoError(t, err)
	items.AssertExpectations(t)
}

func TestBoardService_DefaultLayoutCoversCatalog(t *testing.T) {
	for _, key := range api.BoardItemKeys {
		def, ok := board.DefaultLayout[key]
		require.True(t, ok, "missing default for %s", key)
		require.GreaterOrEqual(t, def.XPct, 0.0)
		require.LessOrEqual(t, def.XPct, 100.0)
		require.NotEmpty(t, def.Zone)
	}
	require.Len(t, board.DefaultLayout, len(api.BoardItemKeys))
}

func TestBoardService_UpsertNoteInsertAssignsID(t *testing.T) {
	ctx := context.Background()
	notes := &mocks.BoardNoteRepository{}
	notes.On("Insert", ctx, "rev1", mock.MatchedBy(func(n *api.BoardNote) bool {
		return n.ID != "" && n.Title == "Note"
	})).Return(&api.BoardNote{ID: "assigned", Title: "Note"}, nil)

	svc := board.NewService(&mocks.BoardItemRepository{}, notes, nil)
	stored, err := svc.UpsertNote(ctx, "rev1", api.BoardNoteUpsertParams{Title: "Note"})
	require.NoError(t, err)
	require.Equal(t, "assigned", stored.ID)
	notes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoardService_UpsertNoteUpdateMissing(t *testing.T) {
	ctx := context.Background()
	id := "gone"
	notes := &mocks.BoardNoteRepository{}
	notes.On("Update", ctx, "rev1", mock.Anything).Return(nil, repository.ErrNotFound)

	svc := board.NewService(&mocks.BoardItemRepository{}, notes, nil)
	_, err := svc.UpsertNote(ctx, "rev1", api.BoardNoteUpsertParams{ID: &id})
	require.Equal(t, board.ErrNoteNotFound, err)
}

func TestBoardService_DeleteNoteMissing(t *testing.T) {
	ctx := context.Background()
	notes := &mocks.BoardNoteRepository{}
	notes.On("Delete", ctx, "rev1", "gone").Return(repository.ErrNotFound)

	svc := board.NewService(&mocks.BoardItemRepository{}, notes, nil)
	err := svc.DeleteNote(ctx, "rev1", "gone")
	require.Equal(t, board.ErrNoteNotFound, err)
}
