package ports

import (
	"context"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// SignUpRequest is the payload forwarded to the identity backend's
// create-identity operation. Metadata travels with the identity and is
// echoed back on token resolution.
type SignUpRequest struct {
	Email    string
	Password string
	Metadata map[string]any
}

// IdentityBackend is the external service that owns authentication: it
// creates identities, issues session tokens, and resolves tokens back to
// principals.
type IdentityBackend interface {
	SignUp(ctx context.Context, req SignUpRequest) (*domain.Identity, *domain.Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*domain.Identity, *domain.Session, error)
	UserFromToken(ctx context.Context, token string) (*domain.Identity, error)
	// DeleteUser removes an identity using elevated privileges. Used only as
	// the compensating action when profile provisioning fails mid-signup.
	DeleteUser(ctx context.Context, id string) error
}

// SessionVerifier is the narrow slice of IdentityBackend the session
// middleware needs: exchange a bearer token for a resolved identity.
type SessionVerifier interface {
	UserFromToken(ctx context.Context, token string) (*domain.Identity, error)
}
