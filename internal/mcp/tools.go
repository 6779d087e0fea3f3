package mcp

import (
	"context"
	"time"

	"github.com/easelhq/easel/api"
	"github.com/easelhq/easel/internal/domain/reviewer"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type addReviewerParams struct {
	Label      string `json:"label" jsonschema:"display name for the reviewer"`
	CanComment bool   `json:"can_comment" jsonschema:"whether the invite link permits writes"`
	TTLHours   int    `json:"ttl_hours,omitempty" jsonschema:"hours until the link expires; 0 means no expiry"`
}

type addReviewerResult struct {
	Key   string `json:"key"`
	Token string `json:"token"`
	Label string `json:"label"`
}

type reviewerKeyParams struct {
	Key string `json:"key" jsonschema:"reviewer key from list_reviewers"`
}

type reviewerInfo struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	CanComment bool       `json:"can_comment"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type listReviewersResult struct {
	Reviewers []reviewerInfo `json:"reviewers"`
}

type reviewStatusResult struct {
	Label      string     `json:"label"`
	CanComment bool       `json:"can_comment"`
	IsDone     bool       `json:"is_done"`
	DoneAt     *time.Time `json:"done_at,omitempty"`
}

type feedbackResult struct {
	Comments   []api.Comment   `json:"comments"`
	BoardItems []api.BoardItem `json:"board_items"`
	BoardNotes []api.BoardNote `json:"board_notes"`
	Sliders    []api.Slider    `json:"sliders"`
	Panels     []api.Panel     `json:"panels"`
	Syntheses  []api.Synthesis `json:"syntheses"`
}

type synthesisParams struct {
	Key        string `json:"key" jsonschema:"reviewer key from list_reviewers"`
	SectionKey string `json:"section_key" jsonschema:"section whose synthesis text to read"`
}

type putInterviewNoteParams struct {
	Key        string   `json:"key" jsonschema:"reviewer key from list_reviewers"`
	ChapterKey string   `json:"chapter_key" jsonschema:"chapter the note attaches to"`
	Summary    string   `json:"summary" jsonschema:"what the reviewer said on this chapter"`
	Quotes     []string `json:"quotes,omitempty" jsonschema:"selected verbatim quotes"`
	SortOrder  int      `json:"sort_order,omitempty" jsonschema:"display order among the reviewer's notes"`
}

type emptyResult struct {
	OK bool `json:"ok"`
}

func registerTools(server *sdkmcp.Server, services Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_reviewer",
		Description: "Register a reviewer and mint their invite token. The token is returned exactly once.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p addReviewerParams) (*sdkmcp.CallToolResult, addReviewerResult, error) {
		req := reviewer.RegisterRequest{Label: p.Label, CanComment: p.CanComment}
		if p.TTLHours > 0 {
			req.TTL = time.Duration(p.TTLHours) * time.Hour
		}
		rev, token, err := services.Reviewers.Register(ctx, req)
		if err != nil {
			return nil, addReviewerResult{}, MapError(err)
		}
		return nil, addReviewerResult{Key: rev.Key, Token: token, Label: rev.Label}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "revoke_reviewer",
		Description: "Revoke a reviewer's invite link. Their stored feedback is kept but unreachable.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p reviewerKeyParams) (*sdkmcp.CallToolResult, emptyResult, error) {
		if err := services.Reviewers.Revoke(ctx, p.Key); err != nil {
			return nil, emptyResult{}, MapError(err)
		}
		return nil, emptyResult{OK: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_reviewers",
		Description: "List registered reviewers with their keys and capabilities.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, listReviewersResult, error) {
		revs, err := services.Reviewers.List(ctx)
		if err != nil {
			return nil, listReviewersResult{}, MapError(err)
		}
		out := listReviewersResult{Reviewers: make([]reviewerInfo, 0, len(revs))}
		for _, r := range revs {
			out.Reviewers = append(out.Reviewers, reviewerInfo{
				Key:        r.Key,
				Label:      r.Label,
				CanComment: r.CanComment,
				ExpiresAt:  r.ExpiresAt,
				CreatedAt:  r.CreatedAt,
			})
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_review_status",
		Description: "Get one reviewer's progress, including whether they marked the review done.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p reviewerKeyParams) (*sdkmcp.CallToolResult, reviewStatusResult, error) {
		revs, err := services.Reviewers.List(ctx)
		if err != nil {
			return nil, reviewStatusResult{}, MapError(err)
		}
		var found *reviewer.Reviewer
		for i := range revs {
			if revs[i].Key == p.Key {
				found = &revs[i]
				break
			}
		}
		if found == nil {
			return nil, reviewStatusResult{}, MapError(reviewer.ErrUnknownToken)
		}

		completion, err := services.Reviewers.Completion(ctx, p.Key)
		if err != nil {
			return nil, reviewStatusResult{}, MapError(err)
		}
		out := reviewStatusResult{
			Label:      found.Label,
			CanComment: found.CanComment,
			IsDone:     completion.IsDone,
		}
		if completion.IsDone {
			doneAt := completion.UpdatedAt
			out.DoneAt = &doneAt
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_feedback",
		Description: "Read everything a reviewer has left on the page: comments, board layout and notes, ratings, theme panels.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p reviewerKeyParams) (*sdkmcp.CallToolResult, feedbackResult, error) {
		var out feedbackResult
		var err error

		if out.Comments, err = services.Comments.List(ctx, p.Key); err != nil {
			return nil, feedbackResult{}, MapError(err)
		}
		if out.BoardItems, err = services.Boards.ListItems(ctx, p.Key); err != nil {
			return nil, feedbackResult{}, MapError(err)
		}
		if out.BoardNotes, err = services.Boards.ListNotes(ctx, p.Key); err != nil {
			return nil, feedbackResult{}, MapError(err)
		}
		if out.Sliders, err = services.Themes.ListSliders(ctx, p.Key); err != nil {
			return nil, feedbackResult{}, MapError(err)
		}
		if out.Panels, err = services.Themes.ListPanels(ctx, p.Key); err != nil {
			return nil, feedbackResult{}, MapError(err)
		}

		// Synthesis sections mirror the sections found in slider and panel rows.
		seen := map[string]bool{}
		for _, s := range out.Sliders {
			seen[s.SectionKey] = true
		}
		for _, panel := range out.Panels {
			seen[panel.SectionKey] = true
		}
		for section := range seen {
			row, err := services.Themes.GetSynthesis(ctx, p.Key, section)
			if err != nil {
				return nil, feedbackResult{}, MapError(err)
			}
			if row.Content != "" {
				out.Syntheses = append(out.Syntheses, *row)
			}
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_synthesis",
		Description: "Read one section's synthesis text for a reviewer.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p synthesisParams) (*sdkmcp.CallToolResult, api.Synthesis, error) {
		row, err := services.Themes.GetSynthesis(ctx, p.Key, p.SectionKey)
		if err != nil {
			return nil, api.Synthesis{}, MapError(err)
		}
		return nil, *row, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "put_interview_note",
		Description: "Attach or update an owner-authored interview note shown back to one reviewer.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p putInterviewNoteParams) (*sdkmcp.CallToolResult, api.InterviewNote, error) {
		stored, err := services.Reviewers.PutInterviewNote(ctx, p.Key, api.InterviewNote{
			ChapterKey: p.ChapterKey,
			Summary:    p.Summary,
			Quotes:     p.Quotes,
			SortOrder:  p.SortOrder,
		})
		if err != nil {
			return nil, api.InterviewNote{}, MapError(err)
		}
		return nil, *stored, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_interview_notes",
		Description: "List the interview notes attached to one reviewer, in display order.",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, p reviewerKeyParams) (*sdkmcp.CallToolResult, []api.InterviewNote, error) {
		notes, err := services.Reviewers.InterviewNotes(ctx, p.Key)
		if err != nil {
			return nil, nil, MapError(err)
		}
		return nil, notes, nil
	})
}
