package reviewer

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Reviewer is one invited feedback session. Key is the SHA-256 hex of the
// opaque token handed out in the invite link; the plaintext token is never
// stored. Every entity row in the system is partitioned by Key.
type Reviewer struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	CanComment bool       `json:"can_comment"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Expired reports whether the reviewer's invite has lapsed at the given time.
func (r *Reviewer) Expired(now time.Time) bool {
	return r.ExpiresAt != nil && now.After(*r.ExpiresAt)
}

// HashToken derives the storage key for an invite token.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
