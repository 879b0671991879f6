package handler

import "github.com/andesalud/patient-gateway/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Email      string `json:"email"       validate:"required,email"`
	Password   string `json:"password"    validate:"required"`
	Rut        string `json:"rut"         validate:"required"`
	FirstNames string `json:"first_names" validate:"required"`
	LastNames  string `json:"last_names"  validate:"required"`
}

type signupResponse struct {
	Message string           `json:"message"`
	User    *domain.Identity `json:"user"`
	Session *domain.Session  `json:"session,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string          `json:"message"`
	Session *domain.Session `json:"session"`
}

// --- Medical records ---

// createRecordRequest uses domain.Float on the numeric fields so malformed
// values decode as 0 instead of failing the bind. That coercion is the
// documented ingestion contract, not an accident.
type createRecordRequest struct {
	UserID                string       `json:"user_id" validate:"required,uuid"`
	BloodType             string       `json:"blood_type"`
	Height                domain.Float `json:"height"`
	InitialWeight         domain.Float `json:"initial_weight"`
	CurrentWeight         domain.Float `json:"current_weight"`
	Allergies             string       `json:"allergies"`
	ChronicDiseases       string       `json:"chronic_diseases"`
	EmergencyContactName  string       `json:"emergency_contact_name"`
	EmergencyContactPhone string       `json:"emergency_contact_phone"`
}

// updateRecordRequest is a partial update: nil means the field was omitted
// and must be left untouched.
type updateRecordRequest struct {
	BloodType             *string       `json:"blood_type"`
	Height                *domain.Float `json:"height"`
	InitialWeight         *domain.Float `json:"initial_weight"`
	CurrentWeight         *domain.Float `json:"current_weight"`
	Allergies             *string       `json:"allergies"`
	ChronicDiseases       *string       `json:"chronic_diseases"`
	EmergencyContactName  *string       `json:"emergency_contact_name"`
	EmergencyContactPhone *string       `json:"emergency_contact_phone"`
}

type recordResponse struct {
	Message string                `json:"message"`
	Data    *domain.MedicalRecord `json:"data"`
}
