package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// AppearanceService reads and writes the preferred color scheme.
type AppearanceService struct {
	prefs ports.PreferenceStore
}

// NewAppearanceService creates the service. Panics if prefs is nil.
func NewAppearanceService(prefs ports.PreferenceStore) *AppearanceService {
	if prefs == nil {
		panic("AppearanceService: PreferenceStore is required")
	}

	return &AppearanceService{prefs: prefs}
}

// Get returns the stored appearance. Missing or unknown values read as
// unspecified.
func (s *AppearanceService) Get(ctx context.Context) (domain.Appearance, error) {
	raw, ok, err := s.prefs.Preference(ctx, domain.AppearancePreferenceKey)
	if err != nil {
		return domain.AppearanceUnspecified, err
	}

	if !ok {
		return domain.AppearanceUnspecified, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return domain.AppearanceUnspecified, nil //nolint:nilerr // unreadable values read as unspecified
	}

	return domain.AppearanceFromInt(v), nil
}

// Set stores the appearance.
func (s *AppearanceService) Set(ctx context.Context, a domain.Appearance) error {
	if domain.AppearanceFromInt(int(a)) != a {
		return domain.NewValidationErrorWithValue("appearance", "unknown value", int(a))
	}

	if err := s.prefs.SetPreference(ctx, domain.AppearancePreferenceKey, strconv.Itoa(int(a))); err != nil {
		return fmt.Errorf("storing appearance: %w", err)
	}

	return nil
}
