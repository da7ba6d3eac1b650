package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cx-platform/projects-dashboard/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware and
// fast-fails when a handler is somehow reached without one. Presence of a
// non-empty token proves the gate ran; handlers must never build an upstream
// call from a zero-value session.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, _ := c.Get("session").(*domain.Session)
	if session == nil || session.Token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return session, nil
}
