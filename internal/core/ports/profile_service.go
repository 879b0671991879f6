package ports

import (
	"context"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// ProfileService exposes read access to provisioned profiles.
type ProfileService interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	ListPatients(ctx context.Context) ([]domain.Profile, error)
}
