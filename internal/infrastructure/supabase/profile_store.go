package supabase

import (
	"context"
	"net/url"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

const profilesTable = "/rest/v1/profiles"

// ProfileStore implements ports.ProfileStore against the PostgREST API.
// It runs on the service-role client: profile rows are written during
// signup before the user has a usable session, so row-level policies
// cannot authorize the insert.
type ProfileStore struct {
	client *Client
}

func NewProfileStore(client *Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) Insert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	var rows []domain.Profile
	err := s.client.do(ctx, "profiles.insert", request{
		method: "POST",
		path:   profilesTable,
		prefer: "return=representation",
		body:   []*domain.Profile{profile},
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return profile, nil
	}
	return &rows[0], nil
}

func (s *ProfileStore) FindByID(ctx context.Context, id string) (*domain.Profile, error) {
	var rows []domain.Profile
	err := s.client.do(ctx, "profiles.select", request{
		method: "GET",
		path:   profilesTable + "?select=*&id=eq." + url.QueryEscape(id),
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrProfileNotFound
	}
	return &rows[0], nil
}

func (s *ProfileStore) ListByRole(ctx context.Context, role string) ([]domain.Profile, error) {
	var rows []domain.Profile
	err := s.client.do(ctx, "profiles.select", request{
		method: "GET",
		path:   profilesTable + "?select=*&role=eq." + url.QueryEscape(role),
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
