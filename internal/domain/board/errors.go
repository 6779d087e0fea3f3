package board

import "errors"

var (
	// ErrUnknownItemKey indicates an item key outside the fixed catalog.
	ErrUnknownItemKey = errors.New("unknown board item key")
	// ErrNoteNotFound indicates the board note doesn't exist for this reviewer.
	ErrNoteNotFound = errors.New("board note not found")
)
