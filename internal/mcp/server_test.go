package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/reviewer"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

type reviewerStub struct {
	registerFn   func(context.Context, reviewer.RegisterRequest) (*reviewer.Reviewer, string, error)
	listFn       func(context.Context) ([]reviewer.Reviewer, error)
	revokeFn     func(context.Context, string) error
	completionFn func(context.Context, string) (*api.Completion, error)
	notesFn      func(context.Context, string) ([]api.InterviewNote, error)
	putNoteFn    func(context.Context, string, api.InterviewNote) (*api.InterviewNote, error)
}

func (s reviewerStub) Register(ctx context.Context, req reviewer.RegisterRequest) (*reviewer.Reviewer, string, error) {
	return s.registerFn(ctx, req)
}
func (s reviewerStub) List(ctx context.Context) ([]reviewer.Reviewer, error) { return s.listFn(ctx) }
func (s reviewerStub) Revoke(ctx context.Context, key string) error          { return s.revokeFn(ctx, key) }
func (s reviewerStub) Completion(ctx context.Context, key string) (*api.Completion, error) {
	return s.completionFn(ctx, key)
}
func (s reviewerStub) InterviewNotes(ctx context.Context, key string) ([]api.InterviewNote, error) {
	return s.notesFn(ctx, key)
}
func (s reviewerStub) PutInterviewNote(ctx context.Context, key string, n api.InterviewNote) (*api.InterviewNote, error) {
	return s.putNoteFn(ctx, key, n)
}

type commentStub struct {
	listFn func(context.Context, string) ([]api.Comment, error)
}

func (s commentStub) List(ctx context.Context, key string) ([]api.Comment, error) {
	return s.listFn(ctx, key)
}

type boardStub struct {
	itemsFn func(context.Context, string) ([]api.BoardItem, error)
	notesFn func(context.Context, string) ([]api.BoardNote, error)
}

func (s boardStub) ListItems(ctx context.Context, key string) ([]api.BoardItem, error) {
	return s.itemsFn(ctx, key)
}
func (s boardStub) ListNotes(ctx context.Context, key string) ([]api.BoardNote, error) {
	return s.notesFn(ctx, key)
}

type themeStub struct {
	slidersFn   func(context.Context, string) ([]api.Slider, error)
	panelsFn    func(context.Context, string) ([]api.Panel, error)
	synthesisFn func(context.Context, string, string) (*api.Synthesis, error)
}

func (s themeStub) ListSliders(ctx context.Context, key string) ([]api.Slider, error) {
	return s.slidersFn(ctx, key)
}
func (s themeStub) ListPanels(ctx context.Context, key string) ([]api.Panel, error) {
	return s.panelsFn(ctx, key)
}
func (s themeStub) GetSynthesis(ctx context.Context, key, section string) (*api.Synthesis, error) {
	return s.synthesisFn(ctx, key, section)
}

func connectTestClient(t *testing.T, services Services) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := NewServer(Config{Services: services, TransportMode: "stdio"})
	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test", Version: "0.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })

	return clientSession
}

func TestAddReviewerTool(t *testing.T) {
	services := Services{
		Reviewers: reviewerStub{
			registerFn: func(_ context.Context, req reviewer.RegisterRequest) (*reviewer.Reviewer, string, error) {
				require.Equal(t, "Alice", req.Label)
				require.True(t, req.CanComment)
				return &reviewer.Reviewer{Key: "hash1", Label: req.Label, CanComment: true}, "plain-token", nil
			},
		},
	}
	session := connectTestClient(t, services)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "add_reviewer",
		Arguments: map[string]any{"label": "Alice", "can_comment": true},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out addReviewerResult
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, "plain-token", out.Token)
	require.Equal(t, "hash1", out.Key)
}

func TestGetFeedbackTool(t *testing.T) {
	services := Services{
		Comments: commentStub{
			listFn: func(_ context.Context, key string) ([]api.Comment, error) {
				require.Equal(t, "hash1", key)
				return []api.Comment{{ID: "c1", Num: 1, Text: "nice"}}, nil
			},
		},
		Boards: boardStub{
			itemsFn: func(_ context.Context, _ string) ([]api.BoardItem, error) { return nil, nil },
			notesFn: func(_ context.Context, _ string) ([]api.BoardNote, error) { return nil, nil },
		},
		Themes: themeStub{
			slidersFn: func(_ context.Context, _ string) ([]api.Slider, error) {
				return []api.Slider{{SectionKey: "strategy", ItemKey: "clarity", Value: 80}}, nil
			},
			panelsFn: func(_ context.Context, _ string) ([]api.Panel, error) { return nil, nil },
			synthesisFn: func(_ context.Context, _, section string) (*api.Synthesis, error) {
				return &api.Synthesis{SectionKey: section, Content: "overall strong"}, nil
			},
		},
	}
	session := connectTestClient(t, services)

	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{
		Name:      "get_feedback",
		Arguments: map[string]any{"key": "hash1"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var out feedbackResult
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.Comments, 1)
	require.Len(t, out.Sliders, 1)
	require.Len(t, out.Syntheses, 1)
	require.Equal(t, "overall strong", out.Syntheses[0].Content)
}

func TestMapError(t *testing.T) {
	apiErr := MapError(reviewer.ErrUnknownToken)
	require.Equal(t, "REVIEWER_NOT_FOUND", apiErr.Code)
	require.Nil(t, MapError(nil))
}
