package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// SessionKey is the echo context key holding the authenticated ports.Session.
const SessionKey = "session"

// Auth validates the bearer token, rejects revoked sessions, and injects the
// derived Session into context.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			session, err := sessionFromClaims(claims)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed session claims")
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), session.TokenID)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session check unavailable")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "session terminated")
			}

			c.Set(SessionKey, session)
			return next(c)
		}
	}
}

// sessionFromClaims rebuilds the Session from token claims, re-checking the
// activeRole-in-roles invariant a tampered token could violate.
func sessionFromClaims(claims jwt.MapClaims) (ports.Session, error) {
	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	tokenID, _ := claims["jti"].(string)
	rawActive, _ := claims["active_role"].(string)
	if userID == "" || tokenID == "" {
		return ports.Session{}, domain.ErrNotAuthenticated
	}

	active, err := domain.ParseRole(rawActive)
	if err != nil {
		return ports.Session{}, err
	}

	rawRoles, _ := claims["roles"].([]interface{})
	roles := make([]domain.Role, 0, len(rawRoles))
	for _, rr := range rawRoles {
		s, _ := rr.(string)
		role, err := domain.ParseRole(s)
		if err != nil {
			return ports.Session{}, err
		}
		roles = append(roles, role)
	}

	session := ports.Session{
		UserID:  userID,
		Email:   email,
		Roles:   roles,
		TokenID: tokenID,
	}
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if !session.HasRole(active) {
		return ports.Session{}, domain.ErrRoleNotHeld
	}
	session.ActiveRole = active

	return session, nil
}
