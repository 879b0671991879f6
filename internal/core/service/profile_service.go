package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andesalud/patient-gateway/internal/core/domain"
	"github.com/andesalud/patient-gateway/internal/core/ports"
)

// ProfileService reads provisioned profiles from the backend store.
type ProfileService struct {
	profiles ports.ProfileStore
	logger   zerolog.Logger
}

func NewProfileService(profiles ports.ProfileStore, logger zerolog.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, logger: logger}
}

// Get returns the profile for the given identity id.
func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidUserID
	}
	return s.profiles.FindByID(ctx, id)
}

// ListPatients returns every profile with the patient role. Authorization
// (specialist/admin only) is enforced at the route, not here.
func (s *ProfileService) ListPatients(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles.ListByRole(ctx, domain.RolePatient)
}
