package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andesalud/patient-gateway/internal/api/middleware"
	"github.com/andesalud/patient-gateway/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Session middleware.
// Its absence on a gated route means the middleware chain is misassembled;
// fail closed with 401 rather than proceeding anonymously.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if !ok || principal == nil || principal.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return principal, nil
}
