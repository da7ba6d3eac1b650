package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cx-platform/projects-dashboard/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the signed session id.
const SessionCookie = "dashboard_session"

// SignInRoute is where unauthenticated callers are sent.
const SignInRoute = "/signin"

// Session is the gate in front of every protected route: it resolves the
// caller's cookie into a session and injects it into the echo context, or
// redirects to the sign-in route. A missing or invalid session is a routing
// decision, not an error — no retries, no error envelope, and crucially no
// upstream call is ever made for an unauthenticated request.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, SignInRoute)
			}

			session, err := auth.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, SignInRoute)
			}

			c.Set("session", session)
			return next(c)
		}
	}
}
