package theme

import "errors"

var (
	// ErrPanelNotFound indicates the theme panel doesn't exist for this reviewer.
	ErrPanelNotFound = errors.New("theme panel not found")
	// ErrInvalidKey indicates an empty section or item key.
	ErrInvalidKey = errors.New("invalid theme key")
)
