package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/andesalud/patient-gateway/internal/api/middleware"
	"github.com/andesalud/patient-gateway/internal/core/domain"
	"github.com/andesalud/patient-gateway/internal/core/ports"
)

const testUserID = "3f2c9a4e-1b6d-4e8f-9a31-5c7d2e0f8b12"

type stubRecordService struct {
	createFn func(ctx context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error)
	getFn    func(ctx context.Context, userID string) (*domain.MedicalRecord, error)
	updateFn func(ctx context.Context, userID string, input ports.UpdateRecordInput) (*domain.MedicalRecord, error)
}

func (s *stubRecordService) Create(ctx context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
	return s.createFn(ctx, input)
}

func (s *stubRecordService) Get(ctx context.Context, userID string) (*domain.MedicalRecord, error) {
	return s.getFn(ctx, userID)
}

func (s *stubRecordService) Update(ctx context.Context, userID string, input ports.UpdateRecordInput) (*domain.MedicalRecord, error) {
	return s.updateFn(ctx, userID, input)
}

func authedContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := newTestContext(t, method, path, body)
	c.Set(middleware.PrincipalKey, &domain.Principal{ID: "caller-1", Role: domain.RolePatient})
	return c, rec
}

func TestMedicalRecordHandler_Create_Success(t *testing.T) {
	stub := &stubRecordService{
		createFn: func(_ context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
			if input.UserID != testUserID {
				t.Fatalf("unexpected user_id: %s", input.UserID)
			}
			if input.Height != 1.68 {
				t.Fatalf("height not coerced: %v", input.Height)
			}
			return &domain.MedicalRecord{UserID: input.UserID, BloodType: input.BloodType}, nil
		},
	}
	h := NewMedicalRecordHandler(stub)

	body := `{"user_id":"` + testUserID + `","blood_type":"O+","height":"1.68","allergies":"penicillin"}`
	c, rec := authedContext(t, http.MethodPost, "/medical/records", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == "" || resp["data"] == nil {
		t.Fatalf("expected message and data, got %v", resp)
	}
}

func TestMedicalRecordHandler_Create_InvalidUUIDRejectedBeforeService(t *testing.T) {
	h := NewMedicalRecordHandler(&stubRecordService{
		createFn: func(_ context.Context, _ ports.CreateRecordInput) (*domain.MedicalRecord, error) {
			t.Fatalf("service must not be called for invalid user_id")
			return nil, nil
		},
	})

	c, rec := authedContext(t, http.MethodPost, "/medical/records", `{"user_id":"not-a-uuid"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMedicalRecordHandler_Create_NumericGarbageCoercedToZero(t *testing.T) {
	var got ports.CreateRecordInput
	h := NewMedicalRecordHandler(&stubRecordService{
		createFn: func(_ context.Context, input ports.CreateRecordInput) (*domain.MedicalRecord, error) {
			got = input
			return &domain.MedicalRecord{UserID: input.UserID}, nil
		},
	})

	body := `{"user_id":"` + testUserID + `","height":"abc","initial_weight":"70.5"}`
	c, rec := authedContext(t, http.MethodPost, "/medical/records", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Height != 0 {
		t.Fatalf("malformed height must coerce to 0, got %v", got.Height)
	}
	if got.InitialWeight != 70.5 {
		t.Fatalf("numeric string must parse, got %v", got.InitialWeight)
	}
}

func TestMedicalRecordHandler_Create_Unauthenticated(t *testing.T) {
	h := NewMedicalRecordHandler(&stubRecordService{})

	c, _ := newTestContext(t, http.MethodPost, "/medical/records", `{"user_id":"`+testUserID+`"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestMedicalRecordHandler_Get_NotFoundPropagates(t *testing.T) {
	h := NewMedicalRecordHandler(&stubRecordService{
		getFn: func(_ context.Context, _ string) (*domain.MedicalRecord, error) {
			return nil, domain.ErrRecordNotFound
		},
	})

	c, _ := authedContext(t, http.MethodGet, "/medical/records/"+testUserID, "")
	c.SetParamNames("user_id")
	c.SetParamValues(testUserID)

	if err := h.Get(c); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestMedicalRecordHandler_Update_PartialBody(t *testing.T) {
	var got ports.UpdateRecordInput
	h := NewMedicalRecordHandler(&stubRecordService{
		updateFn: func(_ context.Context, userID string, input ports.UpdateRecordInput) (*domain.MedicalRecord, error) {
			if userID != testUserID {
				t.Fatalf("unexpected user_id: %s", userID)
			}
			got = input
			return &domain.MedicalRecord{UserID: userID}, nil
		},
	})

	c, rec := authedContext(t, http.MethodPut, "/medical/records/"+testUserID, `{"current_weight":68.1}`)
	c.SetParamNames("user_id")
	c.SetParamValues(testUserID)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.CurrentWeight == nil || *got.CurrentWeight != 68.1 {
		t.Fatalf("present field lost: %+v", got)
	}
	if got.Allergies != nil || got.BloodType != nil {
		t.Fatalf("omitted fields must stay nil: %+v", got)
	}
}
