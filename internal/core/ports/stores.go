package ports

import (
	"context"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// ProfileStore persists one profile row per identity in the external
// relational backend.
type ProfileStore interface {
	Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	FindByID(ctx context.Context, id string) (*domain.Profile, error)
	ListByRole(ctx context.Context, role string) ([]domain.Profile, error)
}

// MedicalRecordStore persists medical records keyed by user id. Update
// receives only the columns being changed; sensitive columns arrive already
// encrypted from the service layer.
type MedicalRecordStore interface {
	Insert(ctx context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, error)
	FindByUserID(ctx context.Context, userID string) (*domain.MedicalRecord, error)
	Update(ctx context.Context, userID string, patch map[string]any) (*domain.MedicalRecord, error)
}
