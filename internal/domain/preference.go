package domain

import "context"

// EventPreference holds a viewer's interest flag and 1-5 star rating for an
// event. Rating 0 means unset. Preferences are keyed by event id alone, so
// they are shared by everyone using the same store.
// swagger:model EventPreference
type EventPreference struct {
	Interested bool `json:"interested"`
	Rating     int  `json:"rating"`
}

// PreferenceRepository defines the interface for the flat event-preference
// mapping. Get returns the zero preference when no entry exists; Set
// rewrites the whole mapping with the entry replaced.
type PreferenceRepository interface {
	Get(ctx context.Context, eventID string) (EventPreference, error)
	Set(ctx context.Context, eventID string, pref EventPreference) error
}

// PreferenceService defines the business logic for event preferences. Set
// merges: a nil field keeps the stored value.
type PreferenceService interface {
	Get(ctx context.Context, eventID string) (EventPreference, error)
	Set(ctx context.Context, eventID string, interested *bool, rating *int) (EventPreference, error)
}
