package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

type stubProfileService struct {
	getFn  func(ctx context.Context, id string) (*domain.Profile, error)
	listFn func(ctx context.Context) ([]domain.Profile, error)
}

func (s *stubProfileService) Get(ctx context.Context, id string) (*domain.Profile, error) {
	return s.getFn(ctx, id)
}

func (s *stubProfileService) ListPatients(ctx context.Context) ([]domain.Profile, error) {
	return s.listFn(ctx)
}

func TestProfileHandler_Get(t *testing.T) {
	id := "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	h := NewProfileHandler(&stubProfileService{
		getFn: func(_ context.Context, got string) (*domain.Profile, error) {
			if got != id {
				t.Fatalf("unexpected id: %s", got)
			}
			return &domain.Profile{ID: id, Email: "maria@example.cl"}, nil
		},
	})

	c, rec := authedContext(t, http.MethodGet, "/users/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var profile domain.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if profile.Email != "maria@example.cl" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestProfileHandler_Get_NotFoundPropagates(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		getFn: func(_ context.Context, _ string) (*domain.Profile, error) {
			return nil, domain.ErrProfileNotFound
		},
	})

	c, _ := authedContext(t, http.MethodGet, "/users/x", "")
	c.SetParamNames("id")
	c.SetParamValues("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

	if err := h.Get(c); !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileHandler_Get_Unauthenticated(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{})

	c, _ := newTestContext(t, http.MethodGet, "/users/x", "")
	err := h.Get(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProfileHandler_ListPatients(t *testing.T) {
	h := NewProfileHandler(&stubProfileService{
		listFn: func(_ context.Context) ([]domain.Profile, error) {
			return []domain.Profile{
				{ID: "a", Role: domain.RolePatient},
				{ID: "b", Role: domain.RolePatient},
			}, nil
		},
	})

	c, rec := authedContext(t, http.MethodGet, "/patients", "")
	if err := h.ListPatients(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var profiles []domain.Profile
	if err := json.Unmarshal(rec.Body.Bytes(), &profiles); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
}
