package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/artisan-works/commission-system/internal/api/middleware"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// ctxSession extracts the Session injected by the Auth middleware and
// fast-fails before any service call when it is absent: presence proves the
// middleware ran and the token carried a usable principal.
func ctxSession(c echo.Context) (ports.Session, error) {
	session, ok := c.Get(middleware.SessionKey).(ports.Session)
	if !ok || session.UserID == "" {
		return ports.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, nil
}
