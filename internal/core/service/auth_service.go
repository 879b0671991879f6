package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/andesalud/patient-gateway/internal/api/metrics"
	"github.com/andesalud/patient-gateway/internal/core/domain"
	"github.com/andesalud/patient-gateway/internal/core/ports"
)

// AuthService provisions new identities and authenticates existing ones
// against the external identity backend.
type AuthService struct {
	backend  ports.IdentityBackend
	profiles ports.ProfileStore
	logger   zerolog.Logger
}

func NewAuthService(backend ports.IdentityBackend, profiles ports.ProfileStore, logger zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, profiles: profiles, logger: logger}
}

// SignUp runs the two-phase provisioning flow: create the identity in the
// auth backend, then insert the matching profile row. The backend offers no
// cross-store transaction, so a phase-2 failure triggers a best-effort
// deletion of the just-created identity. The compensation's own failure is
// logged and swallowed: the caller already receives the profile error, and
// reporting the rollback failure on top of it would mask nothing and fix
// nothing.
func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (*ports.SignUpResult, error) {
	identity, session, err := s.backend.SignUp(ctx, ports.SignUpRequest{
		Email:    input.Email,
		Password: input.Password,
		Metadata: map[string]any{
			"rut":         input.Rut,
			"first_names": input.FirstNames,
			"last_names":  input.LastNames,
			"role":        domain.RolePatient,
			"status":      domain.StatusActive,
		},
	})
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("backend_rejected").Inc()
		return nil, err
	}
	if identity == nil {
		metrics.SignupsTotal.WithLabelValues("incomplete").Inc()
		return nil, domain.ErrProvisioningIncomplete
	}

	profile := &domain.Profile{
		ID:         identity.ID,
		Email:      input.Email,
		Rut:        input.Rut,
		FirstNames: input.FirstNames,
		LastNames:  input.LastNames,
		Role:       domain.RolePatient,
		Status:     domain.StatusActive,
	}
	if _, err := s.profiles.Insert(ctx, profile); err != nil {
		s.compensate(ctx, identity.ID)
		metrics.SignupsTotal.WithLabelValues("profile_failed").Inc()
		return nil, err
	}

	s.logger.Info().Str("user_id", identity.ID).Msg("signup provisioned")
	metrics.SignupsTotal.WithLabelValues("ok").Inc()

	return &ports.SignUpResult{Identity: identity, Session: session}, nil
}

// compensate deletes the orphaned identity after a profile-insert failure.
func (s *AuthService) compensate(ctx context.Context, identityID string) {
	if err := s.backend.DeleteUser(ctx, identityID); err != nil {
		// Swallowed on purpose: partial state is already the failure being
		// reported to the caller. There is no background sweep for orphans.
		metrics.SignupRollbacksTotal.WithLabelValues("failed").Inc()
		s.logger.Error().Err(err).Str("user_id", identityID).Msg("signup rollback failed, identity orphaned")
		return
	}
	metrics.SignupRollbacksTotal.WithLabelValues("ok").Inc()
	s.logger.Warn().Str("user_id", identityID).Msg("signup rolled back after profile failure")
}

// Login exchanges email/password for a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	_, session, err := s.backend.SignInWithPassword(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return session, nil
}
