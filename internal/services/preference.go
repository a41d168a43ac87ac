package services

import (
	"context"
	"fmt"

	"eventboard/internal/domain"
)

type preferenceService struct {
	prefRepo domain.PreferenceRepository
}

// NewPreferenceService creates a PreferenceService over the given repository.
func NewPreferenceService(prefRepo domain.PreferenceRepository) domain.PreferenceService {
	return &preferenceService{prefRepo: prefRepo}
}

func (s *preferenceService) Get(ctx context.Context, eventID string) (domain.EventPreference, error) {
	return s.prefRepo.Get(ctx, eventID)
}

// Set merges the supplied fields into the stored preference; a nil field
// keeps its prior value. Rating 0 clears the stars.
func (s *preferenceService) Set(ctx context.Context, eventID string, interested *bool, rating *int) (domain.EventPreference, error) {
	if rating != nil && (*rating < 0 || *rating > 5) {
		return domain.EventPreference{}, fmt.Errorf("%w: rating must be between 0 and 5", domain.ErrValidation)
	}

	pref, err := s.prefRepo.Get(ctx, eventID)
	if err != nil {
		return domain.EventPreference{}, fmt.Errorf("load preference: %w", err)
	}
	if interested != nil {
		pref.Interested = *interested
	}
	if rating != nil {
		pref.Rating = *rating
	}
	if err := s.prefRepo.Set(ctx, eventID, pref); err != nil {
		return domain.EventPreference{}, fmt.Errorf("save preference: %w", err)
	}
	return pref, nil
}
