package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// AuthHandler handles identity and role management endpoints.
type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=buyer artist"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type socialLoginRequest struct {
	Provider string `json:"provider" validate:"required,oneof=google github"`
	Role     string `json:"role"     validate:"omitempty,oneof=buyer artist"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required,oneof=buyer artist"`
}

type authResponse struct {
	Token      string       `json:"token"`
	User       *domain.User `json:"user"`
	ActiveRole string       `json:"active_role"`
}

func toAuthResponse(res *ports.AuthResult) authResponse {
	return authResponse{
		Token:      res.Token,
		User:       res.User,
		ActiveRole: string(res.ActiveRole),
	}
}

// Signup creates a new account acting under the chosen role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	res, err := h.identity.Signup(c.Request().Context(), req.Email, req.Password, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toAuthResponse(res))
}

// Login establishes a session for a registered email. The password is
// accepted but not verified here; see IdentityService.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	res, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResponse(res))
}

// SocialLogin resolves a provider identity; with a role it doubles as signup.
//
// @Summary      Social login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      socialLoginRequest  true  "Provider and optional role"
// @Success      200   {object}  authResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/social [post]
func (h *AuthHandler) SocialLogin(c echo.Context) error {
	var req socialLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	var role *domain.Role
	if req.Role != "" {
		parsed, err := domain.ParseRole(req.Role)
		if err != nil {
			return err
		}
		role = &parsed
	}

	res, err := h.identity.SocialLogin(c.Request().Context(), req.Provider, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResponse(res))
}

// Logout revokes the current session token.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "session revoked"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.identity.Logout(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SwitchRole re-issues the session under another held role.
//
// @Summary      Switch active role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Target role"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  errorResponse
// @Router       /auth/switch-role [post]
func (h *AuthHandler) SwitchRole(c echo.Context) error {
	return h.roleChange(c, h.identity.SwitchRole)
}

// AddRole grants a new role to the account and switches to it.
//
// @Summary      Add a role
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roleRequest  true  "Role to add"
// @Success      200   {object}  authResponse
// @Router       /auth/add-role [post]
func (h *AuthHandler) AddRole(c echo.Context) error {
	return h.roleChange(c, h.identity.AddRole)
}

func (h *AuthHandler) roleChange(c echo.Context, op func(ctx context.Context, session ports.Session, role domain.Role) (*ports.AuthResult, error)) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	res, err := op(c.Request().Context(), session, role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResponse(res))
}
