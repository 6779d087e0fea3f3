package testserver

import (
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/easelhq/easel/internal/domain/board"
	"github.com/easelhq/easel/internal/domain/comment"
	"github.com/easelhq/easel/internal/domain/reviewer"
	"github.com/easelhq/easel/internal/domain/theme"
	"github.com/easelhq/easel/internal/mcp"
	"github.com/easelhq/easel/internal/sqlite"
	"github.com/easelhq/easel/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// TestServer is a fully wired HTTP server over an in-memory database.
type TestServer struct {
	Server    *httptest.Server
	DB        *sqlite.DB
	Reviewers *reviewer.Service

	comments *comment.Service
	boards   *board.Service
	themes   *theme.Service
}

// New starts a test server. Register reviewers with AddReviewer to get
// tokens for requests.
func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	reviewerRepo := sqlite.NewReviewerRepository(db)
	completionRepo := sqlite.NewCompletionRepository(db)
	noteRepo := sqlite.NewInterviewNoteRepository(db)
	commentRepo := sqlite.NewCommentRepository(db)
	boardItemRepo := sqlite.NewBoardItemRepository(db)
	boardNoteRepo := sqlite.NewBoardNoteRepository(db)
	sliderRepo := sqlite.NewSliderRepository(db)
	panelRepo := sqlite.NewPanelRepository(db)
	synthesisRepo := sqlite.NewSynthesisRepository(db)

	reviewerSvc := reviewer.NewService(reviewerRepo, completionRepo, noteRepo, nil)
	commentSvc := comment.NewService(commentRepo, nil)
	boardSvc := board.NewService(boardItemRepo, boardNoteRepo, nil)
	themeSvc := theme.NewService(sliderRepo, panelRepo, synthesisRepo, nil)

	handler := transport.NewHandler(reviewerSvc, commentSvc, boardSvc, themeSvc, nil)
	resolver := &accessResolver{reviewers: reviewerSvc}
	server := httptest.NewServer(transport.NewServer(handler, transport.AuthMiddleware(resolver)))

	ts := &TestServer{
		Server:    server,
		DB:        db,
		Reviewers: reviewerSvc,
		comments:  commentSvc,
		boards:    boardSvc,
		themes:    themeSvc,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// ConnectMCP starts the owner-side MCP server over the same database and
// returns a connected client session.
func (ts *TestServer) ConnectMCP(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Reviewers: ts.Reviewers,
			Comments:  ts.comments,
			Boards:    ts.boards,
			Themes:    ts.themes,
		},
		TransportMode: "stdio",
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	ctx := context.Background()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	mcpClient := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := mcpClient.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	return session
}

// AddReviewer registers a reviewer and returns the plaintext token.
func (ts *TestServer) AddReviewer(t *testing.T, label string, canComment bool) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, token, err := ts.Reviewers.Register(ctx, reviewer.RegisterRequest{
		Label:      label,
		CanComment: canComment,
	})
	require.NoError(t, err)
	return token
}

type accessResolver struct {
	reviewers *reviewer.Service
}

func (r *accessResolver) ResolveAccess(ctx context.Context, token string) (transport.Access, error) {
	rev, err := r.reviewers.Resolve(ctx, token)
	if err != nil {
		return transport.Access{}, err
	}
	return transport.Access{Key: rev.Key, Label: rev.Label, CanComment: rev.CanComment}, nil
}
