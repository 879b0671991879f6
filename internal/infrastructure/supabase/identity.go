package supabase

import (
	"context"
	"net/url"

	"github.com/andesalud/patient-gateway/internal/core/domain"
	"github.com/andesalud/patient-gateway/internal/core/ports"
)

// IdentityBackend implements ports.IdentityBackend on top of the GoTrue
// auth API. User-facing calls go through the anon client; DeleteUser uses
// the service-role client because /admin routes reject anon credentials.
type IdentityBackend struct {
	anon  *Client
	admin *Client
}

func NewIdentityBackend(anon, admin *Client) *IdentityBackend {
	return &IdentityBackend{anon: anon, admin: admin}
}

type authUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	AppMetadata  map[string]any `json:"app_metadata"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// authResponse handles both shapes GoTrue returns: a session envelope with
// a nested user (autoconfirm on) and a bare user object (email confirmation
// pending). The embedded authUser captures the bare shape's top-level fields.
type authResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	RefreshToken string    `json:"refresh_token"`
	User         *authUser `json:"user"`
	authUser
}

func (r *authResponse) identity() *domain.Identity {
	u := r.User
	if u == nil {
		if r.ID == "" {
			return nil
		}
		u = &r.authUser
	}
	return toIdentity(u)
}

func (r *authResponse) session() *domain.Session {
	if r.AccessToken == "" {
		return nil
	}
	return &domain.Session{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		ExpiresIn:    r.ExpiresIn,
		RefreshToken: r.RefreshToken,
	}
}

func toIdentity(u *authUser) *domain.Identity {
	id := &domain.Identity{
		ID:           u.ID,
		Email:        u.Email,
		AppMetadata:  u.AppMetadata,
		UserMetadata: u.UserMetadata,
	}
	id.Role = id.MetadataRole()
	if s, ok := u.UserMetadata["status"].(string); ok {
		id.Status = s
	}
	return id
}

func (b *IdentityBackend) SignUp(ctx context.Context, req ports.SignUpRequest) (*domain.Identity, *domain.Session, error) {
	payload := map[string]any{
		"email":    req.Email,
		"password": req.Password,
		"data":     req.Metadata,
	}

	var resp authResponse
	err := b.anon.do(ctx, "auth.signup", request{
		method: "POST",
		path:   "/auth/v1/signup",
		body:   payload,
	}, &resp)
	if err != nil {
		return nil, nil, err
	}
	return resp.identity(), resp.session(), nil
}

func (b *IdentityBackend) SignInWithPassword(ctx context.Context, email, password string) (*domain.Identity, *domain.Session, error) {
	var resp authResponse
	err := b.anon.do(ctx, "auth.token", request{
		method: "POST",
		path:   "/auth/v1/token?grant_type=password",
		body:   map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, nil, err
	}
	return resp.identity(), resp.session(), nil
}

func (b *IdentityBackend) UserFromToken(ctx context.Context, token string) (*domain.Identity, error) {
	var u authUser
	err := b.anon.do(ctx, "auth.user", request{
		method: "GET",
		path:   "/auth/v1/user",
		token:  token,
	}, &u)
	if err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return toIdentity(&u), nil
}

func (b *IdentityBackend) DeleteUser(ctx context.Context, id string) error {
	return b.admin.do(ctx, "auth.admin.delete", request{
		method: "DELETE",
		path:   "/auth/v1/admin/users/" + url.PathEscape(id),
	}, nil)
}
