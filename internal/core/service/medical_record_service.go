package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/andesalud/patient-gateway/internal/api/metrics"
	"github.com/andesalud/patient-gateway/internal/core/domain"
	"github.com/andesalud/patient-gateway/internal/core/ports"
	"github.com/andesalud/patient-gateway/internal/pkg/fieldcrypt"
)

// MedicalRecordService implements the record lifecycle. The three sensitive
// columns (allergies, chronic diseases, emergency contact phone) are
// encrypted before every write and decrypted only while assembling a read
// response. Plaintext for those columns never reaches the store or the logs.
type MedicalRecordService struct {
	records ports.MedicalRecordStore
	cipher  *fieldcrypt.Cipher
	logger  zerolog.Logger
}

func NewMedicalRecordService(records ports.MedicalRecordStore, cipher *fieldcrypt.Cipher, logger zerolog.Logger) *MedicalRecordService {
	return &MedicalRecordService{records: records, cipher: cipher, logger: logger}
}

// Create inserts the record for input.UserID. Duplicate detection is left to
// the store's uniqueness constraint on user_id; its rejection surfaces as a
// backend error.
func (s *MedicalRecordService) Create(ctx context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
	if _, err := uuid.Parse(input.UserID); err != nil {
		return nil, domain.ErrInvalidUserID
	}

	record := &domain.MedicalRecord{
		UserID:               input.UserID,
		BloodType:            input.BloodType,
		Height:               input.Height,
		InitialWeight:        input.InitialWeight,
		CurrentWeight:        input.CurrentWeight,
		EmergencyContactName: input.EmergencyContactName,
	}

	var err error
	if record.Allergies, err = s.cipher.Encrypt(input.Allergies); err != nil {
		return nil, err
	}
	if record.ChronicDiseases, err = s.cipher.Encrypt(input.ChronicDiseases); err != nil {
		return nil, err
	}
	if record.EmergencyContactPhone, err = s.cipher.Encrypt(input.EmergencyContactPhone); err != nil {
		return nil, err
	}

	created, err := s.records.Insert(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", input.UserID).Msg("medical record created")
	metrics.RecordOpsTotal.WithLabelValues("create").Inc()

	return s.decrypted(created), nil
}

// Get fetches and decrypts the record for userID. A missing row is
// domain.ErrRecordNotFound, distinct from store/query failures.
func (s *MedicalRecordService) Get(ctx context.Context, userID string) (*domain.MedicalRecord, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrInvalidUserID
	}

	record, err := s.records.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics.RecordOpsTotal.WithLabelValues("read").Inc()
	return s.decrypted(record), nil
}

// Update applies a partial update: only present fields are written, and
// sensitive fields are re-encrypted only when present and non-empty, so an
// omitted field is never overwritten with fresh ciphertext of "".
func (s *MedicalRecordService) Update(ctx context.Context, userID string, input ports.UpdateRecordInput) (*domain.MedicalRecord, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrInvalidUserID
	}

	patch := make(map[string]any)
	if input.BloodType != nil {
		patch["blood_type"] = *input.BloodType
	}
	if input.Height != nil {
		patch["height"] = float64(*input.Height)
	}
	if input.InitialWeight != nil {
		patch["initial_weight"] = float64(*input.InitialWeight)
	}
	if input.CurrentWeight != nil {
		patch["current_weight"] = float64(*input.CurrentWeight)
	}
	if input.EmergencyContactName != nil {
		patch["emergency_contact_name"] = *input.EmergencyContactName
	}

	var err error
	if err = s.encryptInto(patch, "allergies", input.Allergies); err != nil {
		return nil, err
	}
	if err = s.encryptInto(patch, "chronic_diseases", input.ChronicDiseases); err != nil {
		return nil, err
	}
	if err = s.encryptInto(patch, "emergency_contact_phone", input.EmergencyContactPhone); err != nil {
		return nil, err
	}

	// Nothing to change: return the current row instead of sending an
	// empty patch to the store.
	if len(patch) == 0 {
		current, err := s.records.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return s.decrypted(current), nil
	}

	updated, err := s.records.Update(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Msg("medical record updated")
	metrics.RecordOpsTotal.WithLabelValues("update").Inc()

	return s.decrypted(updated), nil
}

func (s *MedicalRecordService) encryptInto(patch map[string]any, column string, value *string) error {
	if value == nil || *value == "" {
		return nil
	}
	ct, err := s.cipher.Encrypt(*value)
	if err != nil {
		return err
	}
	patch[column] = ct
	return nil
}

// decrypted returns a copy of record with the sensitive columns decrypted.
// A column that fails to decrypt (foreign key, corrupted row) is blanked
// and counted rather than failing the whole read.
func (s *MedicalRecordService) decrypted(record *domain.MedicalRecord) *domain.MedicalRecord {
	out := *record
	out.Allergies = s.decryptField(record.UserID, "allergies", record.Allergies)
	out.ChronicDiseases = s.decryptField(record.UserID, "chronic_diseases", record.ChronicDiseases)
	out.EmergencyContactPhone = s.decryptField(record.UserID, "emergency_contact_phone", record.EmergencyContactPhone)
	return &out
}

func (s *MedicalRecordService) decryptField(userID, column, ciphertext string) string {
	if ciphertext == "" {
		return ""
	}
	plaintext, err := s.cipher.Decrypt(ciphertext)
	if err != nil {
		metrics.DecryptFailuresTotal.WithLabelValues(column).Inc()
		s.logger.Error().Err(err).Str("user_id", userID).Str("column", column).Msg("field decryption failed")
		return ""
	}
	return plaintext
}
