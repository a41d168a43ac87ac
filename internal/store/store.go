// Package store provides the key-value slot store backing all persistence.
// A slot holds a single JSON document; writes replace the whole value, the
// namespace is global, and the last writer wins. There are no cross-slot
// transactions.
package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Well-known slot names. The strings match the storage format of earlier
// releases, so an existing data file keeps working.
const (
	SlotUsers       = "ems_users_v2"
	SlotEvents      = "ems_events_v2"
	SlotSession     = "ems_session_v2"
	SlotPreferences = "EVENT_PREFERENCES"
)

// Store is the single seam between the application and its storage medium.
// Get reports ok=false for a slot that was never written.
type Store interface {
	Get(ctx context.Context, slot string) (value string, ok bool, err error)
	Put(ctx context.Context, slot, value string) error
	Delete(ctx context.Context, slot string) error
}

// Read returns the slot decoded as T, or fallback when the slot is absent,
// the backend fails, or the content does not decode as T. Corrupt content is
// recovered locally; no error ever surfaces to the caller.
func Read[T any](ctx context.Context, s Store, slot string, fallback T) T {
	raw, ok, err := s.Get(ctx, slot)
	if err != nil || !ok {
		return fallback
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return fallback
	}
	return value
}

// Write serializes value and fully replaces the slot's previous content.
func Write[T any](ctx context.Context, s Store, slot string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot, err)
	}
	if err := s.Put(ctx, slot, string(raw)); err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	return nil
}
