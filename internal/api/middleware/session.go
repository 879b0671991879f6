package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/andesalud/patient-gateway/internal/api/metrics"
	"github.com/andesalud/patient-gateway/internal/core/domain"
	"github.com/andesalud/patient-gateway/internal/core/ports"
)

// PrincipalKey is the echo context key under which the session gate stores
// the resolved *domain.Principal.
const PrincipalKey = "principal"

// Session validates the bearer token against the identity backend and
// injects the resolved principal into the request context. It answers only
// "who is calling"; role checks belong to RBAC on the specific route.
//
// Tokens are opaque to this gate except for a local unverified JWT parse
// used to reject garbage and expired tokens before paying for the backend
// round-trip. The backend stays the authority on validity.
//
// cache may be nil, which disables caching of token resolutions.
func Session(verifier ports.SessionVerifier, cache ports.SessionCache, cacheTTL time.Duration, logger zerolog.Logger) echo.MiddlewareFunc {
	parser := jwt.NewParser()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			token := parts[1]

			if expiredOrGarbage(parser, token) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ctx := c.Request().Context()
			digest := tokenDigest(token)

			if cache != nil {
				if principal, ok := cache.Get(ctx, digest); ok {
					metrics.SessionCacheTotal.WithLabelValues("hit").Inc()
					c.Set(PrincipalKey, principal)
					return next(c)
				}
				metrics.SessionCacheTotal.WithLabelValues("miss").Inc()
			}

			start := time.Now()
			identity, err := verifier.UserFromToken(ctx, token)
			metrics.SessionVerifyDuration.Observe(time.Since(start).Seconds())
			if err != nil || identity == nil || identity.ID == "" {
				if err != nil && !errors.Is(err, domain.ErrInvalidToken) {
					logger.Warn().Err(err).Msg("token resolution failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			principal := &domain.Principal{
				ID:     identity.ID,
				Email:  identity.Email,
				Role:   identity.MetadataRole(),
				Status: identity.Status,
			}
			if cache != nil {
				cache.Set(ctx, digest, principal, cacheTTL)
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// expiredOrGarbage reports whether the token fails the cheap local checks:
// not a parseable JWT, or carries an exp claim in the past. Signature
// verification is intentionally not attempted here.
func expiredOrGarbage(parser *jwt.Parser, token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	return exp != nil && exp.Before(time.Now())
}

func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
