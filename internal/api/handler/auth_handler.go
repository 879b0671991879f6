package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/andesalud/patient-gateway/internal/core/ports"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp registers a new patient: identity in the auth backend plus the
// matching profile row.
//
// @Summary      Register a new patient
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Registration details"
// @Success      201   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.authService.SignUp(c.Request().Context(), ports.SignUpInput{
		Email:      req.Email,
		Password:   req.Password,
		Rut:        req.Rut,
		FirstNames: req.FirstNames,
		LastNames:  req.LastNames,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, signupResponse{
		Message: "signup successful",
		User:    result.Identity,
		Session: result.Session,
	})
}

// Login authenticates with email and password.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		Session: session,
	})
}
