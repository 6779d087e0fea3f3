package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/board"
	"github.com/easelhq/easel/internal/domain/comment"
	"github.com/easelhq/easel/internal/domain/reviewer"
	"github.com/easelhq/easel/internal/domain/theme"
)

// ErrReadOnlyToken is returned when a read-only token calls a mutating method.
var ErrReadOnlyToken = errors.New("token does not permit writes")

// mutating lists every method gated on the can-comment capability. Reads are
// always allowed for a resolved token.
var mutating = map[string]bool{
	api.MethodCommentUpsert:    true,
	api.MethodCommentDelete:    true,
	api.MethodBoardUpsert:      true,
	api.MethodBoardNoteUpsert:  true,
	api.MethodBoardNoteDelete:  true,
	api.MethodSliderUpsert:     true,
	api.MethodPanelUpsert:      true,
	api.MethodPanelCollapse:    true,
	api.MethodPanelOpenSet:     true,
	api.MethodPanelDelete:      true,
	api.MethodSynthesisUpsert:  true,
	api.MethodCompletionToggle: true,
}

// Handler dispatches JSON-RPC methods to the domain services.
type Handler struct {
	reviewers *reviewer.Service
	comments  *comment.Service
	boards    *board.Service
	themes    *theme.Service
	logger    *slog.Logger
}

// NewHandler creates the RPC dispatch handler.
func NewHandler(reviewers *reviewer.Service, comments *comment.Service, boards *board.Service, themes *theme.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		reviewers: reviewers,
		comments:  comments,
		boards:    boards,
		themes:    themes,
		logger:    logger,
	}
}

func decode[T any](params json.RawMessage) (T, error) {
	var p T
	if len(params) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return p, fmt.Errorf("%w: %v", errBadParams, err)
	}
	return p, nil
}

// Handle dispatches one method call for a resolved access.
func (h *Handler) Handle(ctx context.Context, access Access, method string, params json.RawMessage) (any, error) {
	if mutating[method] && !access.CanComment {
		return nil, ErrReadOnlyToken
	}

	switch method {
	case api.MethodReviewerValidate:
		return api.ReviewerStatus{Label: access.Label, CanComment: access.CanComment}, nil

	case api.MethodCommentsList:
		return h.comments.List(ctx, access.Key)
	case api.MethodCommentUpsert:
		p, err := decode[api.CommentUpsertParams](params)
		if err != nil {
			return nil, err
		}
		return h.comments.Upsert(ctx, access.Key, p)
	case api.MethodCommentDelete:
		p, err := decode[api.DeleteParams](params)
		if err != nil {
			return nil, err
		}
		return nil, h.comments.Delete(ctx, access.Key, p.ID)

	case api.MethodBoardList:
		return h.boards.ListItems(ctx, access.Key)
	case api.MethodBoardUpsert:
		p, err := decode[api.BoardUpsertParams](params)
		if err != nil {
			return nil, err
		}
		return h.boards.UpsertItem(ctx, access.Key, p)
	case api.MethodBoardNotesList:
		return h.boards.ListNotes(ctx, access.Key)
	case api.MethodBoardNoteUpsert:
		p, err := decode[api.BoardNoteUpsertParams](params)
		if err != nil {
			return nil, err
		}
		return h.boards.UpsertNote(ctx, access.Key, p)
	case api.MethodBoardNoteDelete:
		p, err := decode[api.DeleteParams](params)
		if err != nil {
			return nil, err
		}
		return nil, h.boards.DeleteNote(ctx, access.Key, p.ID)

	case api.MethodSlidersList:
		return h.themes.ListSliders(ctx, access.Key)
	case api.MethodSliderUpsert:
		p, err := decode[api.SliderUpsertParams](params)
		if err != nil {
			return nil, err
		}
		return h.themes.UpsertSlider(ctx, access.Key, p)

	case api.MethodPanelsList:
		return h.themes.ListPanels(ctx, access.Key)
	case api.MethodPanelGet:
		p, err := decode[api.PanelKeyParams](params)
		if err != nil {
			return nil, err
		}
		return h.themes.GetPanel(ctx, access.Key, p.SectionKey, p.ItemKey)
	case api.MethodPanelUpsert:
		p, err := decode[api.PanelUpsertParams](params)
		if err != nil {
			return nil, err
		}
		return h.themes.UpsertPanel(ctx, access.Key, p)
	case api.MethodPanelCollapse:
		p, err := decode[api.PanelKeyParams](params)
		if err != nil {
			return nil, err
		}
		return h.themes.CollapsePanel(ctx, access.Key, p.SectionKey, p.ItemKey, true)
	case api.MethodPanelOpenSet:
		p, err := decode[api.PanelOpenSetParams](params)
		if err != nil {
			return nil, err
		}
		return h.themes.SetPanelOpen(ctx, access.Key, p.SectionKey, p.ItemKey, p.IsOpen)
	case api.MethodPanelDelete:
		p, err := decode[api.PanelKeyParams](params)
		if err != nil {
			return nil, err
		}
		return nil, h.themes.DeletePanel(ctx, access.Key, p.SectionKey, p.ItemKey)

	case api.MethodSynthesisGet:
		p, err := decode[api.SynthesisGetParams](params)
		if err != nil {
			return nil, err
		}
		return h.themes.GetSynthesis(ctx, access.Key, p.SectionKey)
	case api.MethodSynthesisUpsert:
		p, err := decode[api.SynthesisUpsertParams](params)
		if err != nil {
			return nil, err
		}
		return h.themes.UpsertSynthesis(ctx, access.Key, p)

	case api.MethodCompletionGet:
		return h.reviewers.Completion(ctx, access.Key)
	case api.MethodCompletionToggle:
		p, err := decode[api.CompletionToggleParams](params)
		if err != nil {
			return nil, err
		}
		return h.reviewers.SetCompletion(ctx, access.Key, p.Value)

	case api.MethodInterviewNotesGet:
		return h.reviewers.InterviewNotes(ctx, access.Key)

	default:
		return nil, fmt.Errorf("%w: %s", errMethodNotFound, method)
	}
}

var (
	errMethodNotFound = errors.New("method not found")
	errBadParams      = errors.New("invalid params")
)

// errorCode maps a dispatch error to its JSON-RPC error code.
func errorCode(err error) int {
	switch {
	case errors.Is(err, errMethodNotFound):
		return ErrMethodNotFound
	case errors.Is(err, ErrReadOnlyToken):
		return ErrReadOnly
	case errors.Is(err, comment.ErrCommentNotFound),
		errors.Is(err, board.ErrNoteNotFound),
		errors.Is(err, theme.ErrPanelNotFound):
		return ErrNotFound
	case errors.Is(err, errBadParams),
		errors.Is(err, board.ErrUnknownItemKey),
		errors.Is(err, theme.ErrInvalidKey):
		return ErrInvalidParams
	default:
		return ErrInternal
	}
}
