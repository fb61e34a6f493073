package session

import (
	"context"
	"time"
)

type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the per-sender conversation state. The id is the WhatsApp
// phone number. Concurrent requests for the same id are not isolated
// from each other; the last Put wins (known race, accepted).
type Session struct {
	ID           string    `json:"id"`
	History      []Turn    `json:"history"`
	PendingQuery string    `json:"pending_query,omitempty"`
	LastIntent   string    `json:"last_intent,omitempty"`
	LastIntentAt time.Time `json:"last_intent_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Recent returns the contents of the last n history turns.
func (s *Session) Recent(n int) []string {
	start := 0
	if len(s.History) > n {
		start = len(s.History) - n
	}
	out := make([]string, 0, n)
	for _, t := range s.History[start:] {
		out = append(out, t.Content)
	}
	return out
}

// Push appends a turn and truncates history to keep entries.
func (s *Session) Push(role, content string, keep int) {
	s.History = append(s.History, Turn{Role: role, Content: content})
	if keep > 0 && len(s.History) > keep {
		s.History = s.History[len(s.History)-keep:]
	}
}

// Store is the pluggable session table. GetOrCreate returns an existing
// session or a fresh one for first contact; Put persists mutations;
// Sweep evicts sessions idle longer than the given duration (a no-op
// for backings with native expiry).
type Store interface {
	GetOrCreate(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, sess *Session) error
	Sweep(ctx context.Context, idleFor time.Duration) (int, error)
}
