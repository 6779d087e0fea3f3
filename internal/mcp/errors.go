package mcp

import (
	"errors"
	"fmt"

	"github.com/easelhq/easel/internal/domain/comment"
	"github.com/easelhq/easel/internal/domain/reviewer"
	"github.com/easelhq/easel/internal/domain/theme"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, reviewer.ErrUnknownToken):
		return &APIError{Code: "REVIEWER_NOT_FOUND", Message: "no reviewer with that key", RecoveryHint: "Call list_reviewers for valid keys"}
	case errors.Is(err, reviewer.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "missing or invalid field", RecoveryHint: "Check required fields"}
	case errors.Is(err, comment.ErrCommentNotFound):
		return &APIError{Code: "COMMENT_NOT_FOUND", Message: "comment not found"}
	case errors.Is(err, theme.ErrPanelNotFound):
		return &APIError{Code: "PANEL_NOT_FOUND", Message: "theme panel not found"}
	default:
		return &APIError{Code: "INTERNAL", Message: err.Error()}
	}
}
