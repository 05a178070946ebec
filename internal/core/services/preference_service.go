package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/core/domain"
	portsrepo "finance-tracker/internal/core/ports/repositories"
)

// PreferenceService manages the single user's display currency.
type PreferenceService struct {
	prefRepo portsrepo.PreferenceRepositoryFacade
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(prefRepo portsrepo.PreferenceRepositoryFacade) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo}
}

// GetDisplayCurrency returns the stored display currency, defaulting to the
// base currency when no preference has ever been written.
func (s *PreferenceService) GetDisplayCurrency(ctx context.Context) (string, error) {
	value, err := s.prefRepo.FindPreference(ctx, domain.PreferenceKeyDisplayCurrency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.BaseCurrency, nil
		}
		return "", fmt.Errorf("failed to read display currency preference: %w", err)
	}
	return value, nil
}

// SetDisplayCurrency overwrites the stored display currency unconditionally.
// Codes are normalized to uppercase; validation against the known-currency
// list belongs to the caller.
func (s *PreferenceService) SetDisplayCurrency(ctx context.Context, currencyCode string) error {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		return fmt.Errorf("%w: display currency cannot be empty", apperrors.ErrValidation)
	}
	if err := s.prefRepo.SavePreference(ctx, domain.PreferenceKeyDisplayCurrency, code); err != nil {
		return fmt.Errorf("failed to save display currency preference: %w", err)
	}
	return nil
}
