package slot

import (
	"context"

	"eventboard/internal/domain"
	"eventboard/internal/store"
)

type preferenceRepository struct {
	store store.Store
}

// NewPreferenceRepository returns a PreferenceRepository backed by the flat
// event-preference mapping slot.
func NewPreferenceRepository(s store.Store) domain.PreferenceRepository {
	return &preferenceRepository{store: s}
}

func (r *preferenceRepository) Get(ctx context.Context, eventID string) (domain.EventPreference, error) {
	prefs := store.Read(ctx, r.store, store.SlotPreferences, map[string]domain.EventPreference{})
	return prefs[eventID], nil
}

func (r *preferenceRepository) Set(ctx context.Context, eventID string, pref domain.EventPreference) error {
	prefs := store.Read(ctx, r.store, store.SlotPreferences, map[string]domain.EventPreference{})
	prefs[eventID] = pref
	return store.Write(ctx, r.store, store.SlotPreferences, prefs)
}
