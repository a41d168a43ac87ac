package domain

import "context"

// Session identifies the currently authenticated user. At most one session
// exists per process at a time; presence of the session slot means "logged
// in". Sessions never expire — they live until an explicit logout.
// swagger:model Session
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the session belongs to an admin. Safe on nil.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// SessionManager owns the session slot. Get returns nil when no session is
// stored or the slot content is unreadable; it never fails.
type SessionManager interface {
	Get(ctx context.Context) *Session
	Set(ctx context.Context, session *Session) error
	Clear(ctx context.Context) error
}
