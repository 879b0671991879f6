package ports

import (
	"context"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// CreateRecordInput carries a full medical record as submitted by the client.
// Sensitive free-text fields arrive in plaintext and are encrypted by the
// service before they reach the store.
type CreateRecordInput struct {
	UserID                string
	BloodType             string
	Height                domain.Float
	InitialWeight         domain.Float
	CurrentWeight         domain.Float
	Allergies             string
	ChronicDiseases       string
	EmergencyContactName  string
	EmergencyContactPhone string
}

// UpdateRecordInput is a partial update: nil pointers mean "leave the column
// untouched". Sensitive fields are re-encrypted only when present and
// non-empty.
type UpdateRecordInput struct {
	BloodType             *string
	Height                *domain.Float
	InitialWeight         *domain.Float
	CurrentWeight         *domain.Float
	Allergies             *string
	ChronicDiseases       *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// MedicalRecordService implements the create/read/update lifecycle of a
// medical record. There is no delete.
type MedicalRecordService interface {
	Create(ctx context.Context, input CreateRecordInput) (*domain.MedicalRecord, error)
	Get(ctx context.Context, userID string) (*domain.MedicalRecord, error)
	Update(ctx context.Context, userID string, input UpdateRecordInput) (*domain.MedicalRecord, error)
}
