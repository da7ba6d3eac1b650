package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cx-platform/projects-dashboard/internal/api/middleware"
	"github.com/cx-platform/projects-dashboard/internal/core/domain"
	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// AuthHandler fronts the external credential provider: sign-in, sign-out,
// and registration passthrough.
type AuthHandler struct {
	auth       ports.AuthService
	sessionTTL time.Duration
	secure     bool
}

func NewAuthHandler(auth ports.AuthService, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, sessionTTL: sessionTTL, secure: secureCookies}
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type sessionResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// SignIn handles POST /api/signin.
//
// @Summary      Sign in against the content API's credential provider
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	session, cookie, err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    cookie,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, sessionResponse{
		UserID:   session.UserID,
		Username: session.Username,
		Email:    session.Email,
	})
}

// Register handles POST /api/register. Success returns the created-account
// payload; an upstream rejection is forwarded with its status and body
// verbatim, unlike the dispatcher's generic envelope.
//
// @Summary      Register a new account with the content API
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	payload, err := h.auth.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var ue *ports.UpstreamError
		if errors.As(err, &ue) {
			return c.JSONBlob(ue.Status, ue.Body)
		}
		return err
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// SignOut handles POST /api/signout: drops the server-side session record
// and expires the cookie.
//
// @Summary      Sign out
// @Tags         auth
// @Success      204
// @Router       /api/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.auth.SignOut(c.Request().Context(), session.ID); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}
