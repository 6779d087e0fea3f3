package mcp

import (
	"context"
	"log/slog"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/reviewer"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Easel exposes the owner side of an annotated feedback page.
Reviewers interact with the page itself; these tools let the page owner
register reviewer invite links, inspect collected feedback, and attach
interview notes that are shown back to a reviewer.

Typical flow:
1. add_reviewer to mint an invite token (shown once; share it as the link).
2. list_reviewers / get_review_status to watch progress.
3. get_feedback to read everything a reviewer has left on the page.
4. put_interview_note to surface interview context to that reviewer.`

// ReviewerService defines reviewer operations needed by MCP.
type ReviewerService interface {
	Register(ctx context.Context, req reviewer.RegisterRequest) (*reviewer.Reviewer, string, error)
	List(ctx context.Context) ([]reviewer.Reviewer, error)
	Revoke(ctx context.Context, key string) error
	Completion(ctx context.Context, reviewerKey string) (*api.Completion, error)
	InterviewNotes(ctx context.Context, reviewerKey string) ([]api.InterviewNote, error)
	PutInterviewNote(ctx context.Context, reviewerKey string, n api.InterviewNote) (*api.InterviewNote, error)
}

// CommentService defines comment reads needed by MCP.
type CommentService interface {
	List(ctx context.Context, reviewerKey string) ([]api.Comment, error)
}

// BoardService defines board reads needed by MCP.
type BoardService interface {
	ListItems(ctx context.Context, reviewerKey string) ([]api.BoardItem, error)
	ListNotes(ctx context.Context, reviewerKey string) ([]api.BoardNote, error)
}

// ThemeService defines theme reads needed by MCP.
type ThemeService interface {
	ListSliders(ctx context.Context, reviewerKey string) ([]api.Slider, error)
	ListPanels(ctx context.Context, reviewerKey string) ([]api.Panel, error)
	GetSynthesis(ctx context.Context, reviewerKey, sectionKey string) (*api.Synthesis, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Reviewers ReviewerService
	Comments  CommentService
	Boards    BoardService
	Themes    ThemeService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	OwnerKey      string
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "easel",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio is a local owner session; HTTP requires the owner key.
	if cfg.TransportMode != "stdio" && cfg.OwnerKey != "" {
		server.AddReceivingMiddleware(ownerAuthMiddleware(cfg.OwnerKey))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
