package comment

import "errors"

var (
	// ErrCommentNotFound indicates the comment doesn't exist for this reviewer.
	ErrCommentNotFound = errors.New("comment not found")
)
