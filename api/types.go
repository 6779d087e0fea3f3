// Package api defines the wire contract shared by the easel server and its
// client SDK: entity rows, RPC parameter shapes, and method names. Every row
// is scoped server-side to the reviewer resolved from the bearer token; the
// reviewer key itself never appears on the wire.
package api

import "time"

// RPC method names. Same vocabulary on both sides of the wire.
const (
	MethodReviewerValidate = "reviewer_validate"

	MethodCommentsList  = "comments_list"
	MethodCommentUpsert = "comment_upsert"
	MethodCommentDelete = "comment_delete"

	MethodBoardList       = "board_list"
	MethodBoardUpsert     = "board_upsert"
	MethodBoardNotesList  = "board_notes_list"
	MethodBoardNoteUpsert = "board_note_upsert"
	MethodBoardNoteDelete = "board_note_delete"

	MethodSlidersList  = "sliders_list"
	MethodSliderUpsert = "slider_upsert"

	MethodPanelsList    = "theme_panels_list"
	MethodPanelGet      = "theme_panel_get"
	MethodPanelUpsert   = "theme_panel_upsert"
	MethodPanelCollapse = "theme_panel_collapse"
	MethodPanelOpenSet  = "theme_panel_open_set"
	MethodPanelDelete   = "theme_panel_delete"

	MethodSynthesisGet    = "synthesis_get"
	MethodSynthesisUpsert = "synthesis_upsert"

	MethodCompletionGet    = "review_complete_get"
	MethodCompletionToggle = "review_complete_toggle"

	MethodInterviewNotesGet = "interview_notes_get"
)

// ReviewerStatus is the result of reviewer_validate.
type ReviewerStatus struct {
	Label      string `json:"label"`
	CanComment bool   `json:"can_comment"`
}

// Comment is a freely positioned reviewer note anchored to the page. Num is
// assigned by the first successful insert, unique per reviewer, and never
// reused after delete.
type Comment struct {
	ID        string    `json:"id"`
	Num       int       `json:"num"`
	XPct      float64   `json:"x_pct"`
	YPct      float64   `json:"y_pct"`
	Text      string    `json:"text"`
	Collapsed bool      `json:"collapsed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoardItemKey identifies one of the fixed prioritization-board cards.
type BoardItemKey string

const (
	BoardCustomer       BoardItemKey = "customer"
	BoardIntegrator     BoardItemKey = "integrator"
	BoardDifferentiator BoardItemKey = "differentiator"
	BoardStrategic      BoardItemKey = "strategic"
	BoardConsistency    BoardItemKey = "consistency"
	BoardCulture        BoardItemKey = "culture"
	BoardCreativity     BoardItemKey = "creativity"
)

// BoardItemKeys is the closed catalog, in default layout order.
var BoardItemKeys = []BoardItemKey{
	BoardCustomer,
	BoardIntegrator,
	BoardDifferentiator,
	BoardStrategic,
	BoardConsistency,
	BoardCreativity,
	BoardCulture,
}

// BoardZone is a cosmetic grouping label carried through unchanged.
type BoardZone string

const (
	ZoneCore       BoardZone = "core"
	ZoneSecondary  BoardZone = "secondary"
	ZoneSupporting BoardZone = "supporting"
	ZoneUnused     BoardZone = "unused"
)

// BoardItem is one row of the fixed-catalog board layout. One row per
// (reviewer, item key); rows are upserted, never deleted.
type BoardItem struct {
	ItemKey   BoardItemKey `json:"item_key"`
	XPct      float64      `json:"x_pct"`
	YPct      float64      `json:"y_pct"`
	Zone      BoardZone    `json:"zone"`
	Collapsed bool         `json:"collapsed"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// BoardNote is a reviewer-authored card on the board. Full CRUD.
type BoardNote struct {
	ID        string    `json:"id"`
	XPct      float64   `json:"x_pct"`
	YPct      float64   `json:"y_pct"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Collapsed bool      `json:"collapsed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Slider is one Likert-style rating. One row per (reviewer, section, item).
type Slider struct {
	SectionKey string    `json:"section_key"`
	ItemKey    string    `json:"item_key"`
	Value      int       `json:"value"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Panel is a theme comment popover. Collapsed is the durable minimized state;
// IsOpen records whether the panel was mounted when the reviewer last
// navigated away, so an in-progress comment survives a reload.
type Panel struct {
	SectionKey string    `json:"section_key"`
	ItemKey    string    `json:"item_key"`
	Title      string    `json:"title"`
	Text       string    `json:"text"`
	Collapsed  bool      `json:"collapsed"`
	IsOpen     bool      `json:"is_open"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Synthesis is the free-text wrap-up for a section. One row per
// (reviewer, section).
type Synthesis struct {
	SectionKey string    `json:"section_key"`
	Content    string    `json:"content"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Completion is the single per-reviewer "mark as done" toggle.
type Completion struct {
	IsDone    bool      `json:"is_done"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InterviewNote is owner-authored context shown back to one reviewer: what
// they said on a chapter during the interview, with selected quotes.
type InterviewNote struct {
	ChapterKey string   `json:"chapter_key"`
	Summary    string   `json:"summary"`
	Quotes     []string `json:"quotes"`
	SortOrder  int      `json:"sort_order"`
}
