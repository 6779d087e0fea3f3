package api

// CommentUpsertParams carries a comment write. A nil ID requests an insert;
// the server assigns the id and the next per-reviewer num and returns the
// full row.
type CommentUpsertParams struct {
	ID        *string `json:"id"`
	XPct      float64 `json:"x_pct"`
	YPct      float64 `json:"y_pct"`
	Text      string  `json:"text"`
	Collapsed bool    `json:"collapsed"`
}

// DeleteParams identifies a row to delete by server id.
type DeleteParams struct {
	ID string `json:"id"`
}

// BoardUpsertParams writes one fixed-catalog board row, keyed by item key.
type BoardUpsertParams struct {
	ItemKey   BoardItemKey `json:"item_key"`
	XPct      float64      `json:"x_pct"`
	YPct      float64      `json:"y_pct"`
	Zone      BoardZone    `json:"zone"`
	Collapsed bool         `json:"collapsed"`
}

// BoardNoteUpsertParams carries a board note write; nil ID means insert.
type BoardNoteUpsertParams struct {
	ID        *string `json:"id"`
	XPct      float64 `json:"x_pct"`
	YPct      float64 `json:"y_pct"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	Collapsed bool    `json:"collapsed"`
}

// SliderUpsertParams writes one rating.
type SliderUpsertParams struct {
	SectionKey string `json:"section_key"`
	ItemKey    string `json:"item_key"`
	Value      int    `json:"value"`
}

// PanelKeyParams identifies a theme panel by its composite key.
type PanelKeyParams struct {
	SectionKey string `json:"section_key"`
	ItemKey    string `json:"item_key"`
}

// PanelUpsertParams writes a panel's content.
type PanelUpsertParams struct {
	SectionKey string `json:"section_key"`
	ItemKey    string `json:"item_key"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Collapsed  bool   `json:"collapsed"`
}

// PanelOpenSetParams flips the transient mounted flag.
type PanelOpenSetParams struct {
	SectionKey string `json:"section_key"`
	ItemKey    string `json:"item_key"`
	IsOpen     bool   `json:"is_open"`
}

// SynthesisGetParams reads one section's synthesis text.
type SynthesisGetParams struct {
	SectionKey string `json:"section_key"`
}

// SynthesisUpsertParams writes one section's synthesis text.
type SynthesisUpsertParams struct {
	SectionKey string `json:"section_key"`
	Content    string `json:"content"`
}

// CompletionToggleParams sets the done flag.
type CompletionToggleParams struct {
	Value bool `json:"value"`
}
