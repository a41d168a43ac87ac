package slot

import (
	"context"

	"eventboard/internal/domain"
	"eventboard/internal/store"
)

type eventRepository struct {
	store store.Store
}

// NewEventRepository returns an EventRepository backed by the events slot.
func NewEventRepository(s store.Store) domain.EventRepository {
	return &eventRepository{store: s}
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	return store.Read(ctx, r.store, store.SlotEvents, []*domain.Event{}), nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	events := store.Read(ctx, r.store, store.SlotEvents, []*domain.Event{})
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *eventRepository) Append(ctx context.Context, event *domain.Event) error {
	events := store.Read(ctx, r.store, store.SlotEvents, []*domain.Event{})
	events = append(events, event)
	return store.Write(ctx, r.store, store.SlotEvents, events)
}

func (r *eventRepository) Replace(ctx context.Context, event *domain.Event) error {
	events := store.Read(ctx, r.store, store.SlotEvents, []*domain.Event{})
	for i, e := range events {
		if e.ID == event.ID {
			events[i] = event
			return store.Write(ctx, r.store, store.SlotEvents, events)
		}
	}
	return domain.ErrNotFound
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	events := store.Read(ctx, r.store, store.SlotEvents, []*domain.Event{})
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	// Removing an absent id still rewrites the slot; the result is identical.
	return store.Write(ctx, r.store, store.SlotEvents, kept)
}

func (r *eventRepository) Approve(ctx context.Context, id string) error {
	events := store.Read(ctx, r.store, store.SlotEvents, []*domain.Event{})
	for _, e := range events {
		if e.ID == id {
			e.Approved = true
		}
	}
	return store.Write(ctx, r.store, store.SlotEvents, events)
}
