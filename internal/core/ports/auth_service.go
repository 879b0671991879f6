package ports

import (
	"context"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// SignUpInput carries the fields collected at registration time.
type SignUpInput struct {
	Email      string
	Password   string
	Rut        string
	FirstNames string
	LastNames  string
}

// SignUpResult is the outcome of a fully provisioned signup: the new
// identity plus the session material issued by the backend.
type SignUpResult struct {
	Identity *domain.Identity
	Session  *domain.Session
}

// AuthService provisions identities and authenticates existing ones.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
}
