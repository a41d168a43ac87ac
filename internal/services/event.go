package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventboard/internal/domain"
)

const dateLayout = "2006-01-02"

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService over the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

// List returns the collection restricted by filter. Search, category, and
// ordering are applied at read time on top of the unordered stored
// collection.
func (s *eventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	filtered := []*domain.Event{}
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, e := range events {
		if filter.ApprovedOnly && !e.Approved {
			continue
		}
		if filter.PendingOnly && e.Approved {
			continue
		}
		if filter.CreatorID != "" && e.CreatorID != filter.CreatorID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if query != "" && !matchesSearch(e, query) {
			continue
		}
		filtered = append(filtered, e)
	}

	sortByDate(filtered, filter.Sort)
	return filtered, nil
}

func matchesSearch(e *domain.Event, query string) bool {
	return strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Location), query) ||
		strings.Contains(strings.ToLower(e.Description), query)
}

// sortByDate orders events by calendar date, newest first unless order is
// SortOldest. Unparseable dates sort as the zero time. The sort is stable so
// same-day events keep their stored order.
func sortByDate(events []*domain.Event, order string) {
	asTime := func(e *domain.Event) time.Time {
		t, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			return time.Time{}
		}
		return t
	}
	sort.SliceStable(events, func(i, j int) bool {
		if order == domain.SortOldest {
			return asTime(events[i]).Before(asTime(events[j]))
		}
		return asTime(events[i]).After(asTime(events[j]))
	})
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func validateInput(input domain.EventInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"date", input.Date},
		{"time", input.Time},
		{"description", input.Description},
		{"location", input.Location},
		{"image", input.Image},
		{"category", input.Category},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrValidation, f.name)
		}
	}
	if !domain.ValidCategory(input.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, input.Category)
	}
	return nil
}

// Create appends a new event owned by the session's user. Events created by
// an admin are approved immediately; everyone else's wait for approval.
func (s *eventService) Create(ctx context.Context, input domain.EventInput, session *domain.Session) (*domain.Event, error) {
	if session == nil {
		return nil, domain.ErrForbidden
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.Image,
		Category:    input.Category,
		Tags:        domain.NormalizeTags(input.Tags),
		CreatorID:   session.ID,
		Approved:    session.Role == domain.RoleAdmin,
	}
	if err := s.eventRepo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update replaces the matched event wholesale with the merged fields. Only
// the creator or an admin may edit; approval state survives the edit.
func (s *eventService) Update(ctx context.Context, id string, input domain.EventInput, session *domain.Session) (*domain.Event, error) {
	current, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil || (session.Role != domain.RoleAdmin && session.ID != current.CreatorID) {
		return nil, domain.ErrForbidden
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	updated := &domain.Event{
		ID:          current.ID,
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Description: input.Description,
		Location:    input.Location,
		Image:       input.Image,
		Category:    input.Category,
		Tags:        domain.NormalizeTags(input.Tags),
		CreatorID:   current.CreatorID,
		Approved:    current.Approved,
	}
	if err := s.eventRepo.Replace(ctx, updated); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) Approve(ctx context.Context, id string) error {
	if err := s.eventRepo.Approve(ctx, id); err != nil {
		return fmt.Errorf("approve event: %w", err)
	}
	return nil
}
