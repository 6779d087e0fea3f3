package reviewer

import "errors"

var (
	// ErrUnknownToken indicates the token resolves to no reviewer.
	ErrUnknownToken = errors.New("unknown reviewer token")
	// ErrExpiredToken indicates the reviewer's invite has lapsed.
	ErrExpiredToken = errors.New("expired reviewer token")
	// ErrInvalidInput indicates invalid registration input.
	ErrInvalidInput = errors.New("invalid reviewer input")
)
