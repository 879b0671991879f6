package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// RBAC enforces role-based access control on routes already behind Session.
// A request without a resolved principal is a middleware-ordering bug and is
// rejected as unauthenticated rather than forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(*domain.Principal)
			if !ok || principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[principal.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
