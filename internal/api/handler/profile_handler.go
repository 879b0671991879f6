package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andesalud/patient-gateway/internal/core/ports"
)

// ProfileHandler serves profile lookups for authenticated callers.
type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns one profile by identity id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Identity id (UUID)"
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	profile, err := h.profileService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ListPatients returns every patient profile. The route is gated to
// specialist and admin roles.
//
// @Summary      List patient profiles
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /patients [get]
func (h *ProfileHandler) ListPatients(c echo.Context) error {
	if _, err := ctxPrincipal(c); err != nil {
		return err
	}

	patients, err := h.profileService.ListPatients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, patients)
}
