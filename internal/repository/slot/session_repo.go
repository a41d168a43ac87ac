package slot

import (
	"context"

	"eventboard/internal/domain"
	"eventboard/internal/store"
)

type sessionManager struct {
	store store.Store
}

// NewSessionManager returns a SessionManager backed by the session slot.
func NewSessionManager(s store.Store) domain.SessionManager {
	return &sessionManager{store: s}
}

// Get returns the stored session, or nil when the slot is absent or its
// content is unreadable. Callers treat nil as "not logged in".
func (m *sessionManager) Get(ctx context.Context) *domain.Session {
	return store.Read[*domain.Session](ctx, m.store, store.SlotSession, nil)
}

func (m *sessionManager) Set(ctx context.Context, session *domain.Session) error {
	return store.Write(ctx, m.store, store.SlotSession, session)
}

func (m *sessionManager) Clear(ctx context.Context) error {
	return m.store.Delete(ctx, store.SlotSession)
}
