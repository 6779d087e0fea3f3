package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/easelhq/easel/api"
)

// SessionState is where the reviewer session stands.
type SessionState int

const (
	// SessionNoToken: the page was opened without an invite token. The page
	// renders read-only with no banner.
	SessionNoToken SessionState = iota
	// SessionValidating: a token is present and being checked.
	SessionValidating
	// SessionValid: the token resolved; Label and CanComment are set.
	SessionValid
	// SessionInvalid: the server rejected the token. The page renders
	// read-only with an invalid-link notice.
	SessionInvalid
)

// Session resolves the invite token and carries the reviewer's identity for
// the lifetime of the page.
type Session struct {
	mu         sync.RWMutex
	rpc        RPC
	state      SessionState
	label      string
	canComment bool
	done       bool
}

// NewSession creates an unresolved session. A nil rpc means no token was
// present and the session stays in SessionNoToken.
func NewSession(rpc RPC) *Session {
	s := &Session{rpc: rpc}
	if rpc == nil {
		s.state = SessionNoToken
	} else {
		s.state = SessionValidating
	}
	return s
}

// Validate checks the token against the server. Any rejection, expired or
// unknown alike, lands in SessionInvalid.
func (s *Session) Validate(ctx context.Context) error {
	s.mu.Lock()
	if s.rpc == nil {
		s.mu.Unlock()
		return nil
	}
	s.state = SessionValidating
	s.mu.Unlock()

	var status api.ReviewerStatus
	err := s.rpc.Call(ctx, api.MethodReviewerValidate, nil, &status)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = SessionInvalid
		if errors.Is(err, ErrUnauthorized) {
			return nil
		}
		return fmt.Errorf("validating token: %w", err)
	}
	s.state = SessionValid
	s.label = status.Label
	s.canComment = status.CanComment
	return nil
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Label returns the reviewer's display name, empty unless SessionValid.
func (s *Session) Label() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.label
}

// CanComment reports whether this session may mutate anything.
func (s *Session) CanComment() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == SessionValid && s.canComment
}

// Done reports the loaded review-completion flag.
func (s *Session) Done() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.done
}

// LoadCompletion fetches the reviewer's done toggle.
func (s *Session) LoadCompletion(ctx context.Context) error {
	if !s.CanComment() {
		return nil
	}
	var c api.Completion
	if err := s.rpc.Call(ctx, api.MethodCompletionGet, nil, &c); err != nil {
		return fmt.Errorf("loading completion: %w", err)
	}
	s.mu.Lock()
	s.done = c.IsDone
	s.mu.Unlock()
	return nil
}

// InterviewNotes fetches the owner-authored chapter notes addressed to this
// reviewer. Read-only sessions may still read their notes.
func (s *Session) InterviewNotes(ctx context.Context) ([]api.InterviewNote, error) {
	if s.State() != SessionValid {
		return nil, nil
	}
	var notes []api.InterviewNote
	if err := s.rpc.Call(ctx, api.MethodInterviewNotesGet, nil, &notes); err != nil {
		return nil, fmt.Errorf("loading interview notes: %w", err)
	}
	return notes, nil
}

// ToggleDone flips the done flag, optimistically and immediately; the
// completion toggle is deliberate enough that it is not debounced.
func (s *Session) ToggleDone(ctx context.Context) error {
	if !s.CanComment() {
		return nil
	}
	s.mu.Lock()
	next := !s.done
	s.done = next
	s.mu.Unlock()

	var c api.Completion
	err := s.rpc.Call(ctx, api.MethodCompletionToggle, api.CompletionToggleParams{Value: next}, &c)
	if err != nil {
		s.mu.Lock()
		s.done = !next
		s.mu.Unlock()
		return fmt.Errorf("toggling completion: %w", err)
	}
	s.mu.Lock()
	s.done = c.IsDone
	s.mu.Unlock()
	return nil
}
