package services

import (
	"context"
	"fmt"

	"eventboard/internal/domain"
)

type statsService struct {
	userRepo  domain.UserRepository
	eventRepo domain.EventRepository
}

// NewStatsService creates a StatsService over the user and event
// repositories.
func NewStatsService(userRepo domain.UserRepository, eventRepo domain.EventRepository) domain.StatsService {
	return &statsService{
		userRepo:  userRepo,
		eventRepo: eventRepo,
	}
}

// AdminOverview returns the admin dashboard counters and the approval queue.
func (s *statsService) AdminOverview(ctx context.Context) (*domain.AdminOverview, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	pending := []*domain.Event{}
	for _, e := range events {
		if !e.Approved {
			pending = append(pending, e)
		}
	}
	return &domain.AdminOverview{
		TotalUsers:    len(users),
		TotalEvents:   len(events),
		PendingCount:  len(pending),
		PendingEvents: pending,
	}, nil
}
