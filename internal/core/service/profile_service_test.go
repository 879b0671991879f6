package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

type fixedProfileStore struct {
	byID   map[string]*domain.Profile
	byRole map[string][]domain.Profile
}

func (s *fixedProfileStore) Insert(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	return p, nil
}

func (s *fixedProfileStore) FindByID(_ context.Context, id string) (*domain.Profile, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (s *fixedProfileStore) ListByRole(_ context.Context, role string) ([]domain.Profile, error) {
	return s.byRole[role], nil
}

func TestProfileService_Get(t *testing.T) {
	id := "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	store := &fixedProfileStore{
		byID: map[string]*domain.Profile{
			id: {ID: id, Email: "maria@example.cl", Role: domain.RolePatient},
		},
	}
	svc := NewProfileService(store, zerolog.Nop())

	p, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Email != "maria@example.cl" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestProfileService_Get_InvalidID(t *testing.T) {
	svc := NewProfileService(&fixedProfileStore{}, zerolog.Nop())

	if _, err := svc.Get(context.Background(), "abc"); !errors.Is(err, domain.ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}
}

func TestProfileService_Get_NotFound(t *testing.T) {
	svc := NewProfileService(&fixedProfileStore{byID: map[string]*domain.Profile{}}, zerolog.Nop())

	_, err := svc.Get(context.Background(), "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileService_ListPatients(t *testing.T) {
	store := &fixedProfileStore{
		byRole: map[string][]domain.Profile{
			domain.RolePatient: {
				{ID: "a", Role: domain.RolePatient},
				{ID: "b", Role: domain.RolePatient},
			},
			domain.RoleSpecialist: {
				{ID: "c", Role: domain.RoleSpecialist},
			},
		},
	}
	svc := NewProfileService(store, zerolog.Nop())

	patients, err := svc.ListPatients(context.Background())
	if err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	if len(patients) != 2 {
		t.Fatalf("expected 2 patients, got %d", len(patients))
	}
}
