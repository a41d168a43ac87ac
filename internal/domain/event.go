package domain

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors shared across event and preference operations.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)

// Event categories. Category is a closed set; anything else fails create and
// edit validation.
const (
	CategoryConference = "Conference"
	CategoryWorkshop   = "Workshop"
	CategoryMeetup     = "Meetup"
	CategoryWebinar    = "Webinar"
)

// Categories lists all valid event categories.
var Categories = []string{CategoryConference, CategoryWorkshop, CategoryMeetup, CategoryWebinar}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Event represents a listed event. Date is a YYYY-MM-DD calendar string and
// Time a clock string; Image holds an inline Base64 payload. An event is
// publicly visible only once Approved is true.
// swagger:model Event
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	CreatorID   string   `json:"creatorId"`
	Approved    bool     `json:"approved"`
}

// EventInput carries the caller-supplied fields for create and edit. Tags is
// the raw comma-separated form input, normalized by the service.
type EventInput struct {
	Title       string
	Date        string
	Time        string
	Description string
	Location    string
	Image       string
	Category    string
	Tags        string
}

// NormalizeTags splits a comma-separated tag string, trims each entry, and
// drops blanks. The result preserves input order.
func NormalizeTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// Sort orders for event listings, applied to the date field at read time.
// Ordering is a view concern and is never persisted.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// EventFilter restricts and orders an event listing. Zero value means the
// full collection in newest-first order.
type EventFilter struct {
	ApprovedOnly bool
	PendingOnly  bool
	CreatorID    string
	Search       string
	Category     string
	Sort         string
}

// EventRepository defines the interface for event storage. Every mutation
// rewrites the whole collection. Delete and Approve are silent no-ops when
// the id is absent; Replace reports ErrNotFound instead.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Append(ctx context.Context, event *Event) error
	Replace(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
}

// EventService defines the business logic for event listing and management.
type EventService interface {
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, input EventInput, session *Session) (*Event, error)
	Update(ctx context.Context, id string, input EventInput, session *Session) (*Event, error)
	Delete(ctx context.Context, id string) error
	Approve(ctx context.Context, id string) error
}
