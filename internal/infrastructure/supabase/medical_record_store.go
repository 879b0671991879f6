package supabase

import (
	"context"
	"net/url"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

const recordsTable = "/rest/v1/medical_records"

// MedicalRecordStore implements ports.MedicalRecordStore against the
// PostgREST API using the service-role client. Sensitive columns arrive
// and leave as ciphertext; this layer never sees plaintext for them.
type MedicalRecordStore struct {
	client *Client
}

func NewMedicalRecordStore(client *Client) *MedicalRecordStore {
	return &MedicalRecordStore{client: client}
}

func (s *MedicalRecordStore) Insert(ctx context.Context, record *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	var rows []domain.MedicalRecord
	err := s.client.do(ctx, "medical_records.insert", request{
		method: "POST",
		path:   recordsTable,
		prefer: "return=representation",
		body:   []*domain.MedicalRecord{record},
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return record, nil
	}
	return &rows[0], nil
}

func (s *MedicalRecordStore) FindByUserID(ctx context.Context, userID string) (*domain.MedicalRecord, error) {
	var rows []domain.MedicalRecord
	err := s.client.do(ctx, "medical_records.select", request{
		method: "GET",
		path:   recordsTable + "?select=*&user_id=eq." + url.QueryEscape(userID),
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (s *MedicalRecordStore) Update(ctx context.Context, userID string, patch map[string]any) (*domain.MedicalRecord, error) {
	var rows []domain.MedicalRecord
	err := s.client.do(ctx, "medical_records.update", request{
		method: "PATCH",
		path:   recordsTable + "?user_id=eq." + url.QueryEscape(userID),
		prefer: "return=representation",
		body:   patch,
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrRecordNotFound
	}
	return &rows[0], nil
}
