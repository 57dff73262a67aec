package ports

import (
	"time"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// Session is the authenticated principal for a single request: the verified
// user identity plus the role currently in effect. It is derived from the
// bearer token by the auth middleware, never stored server-side.
type Session struct {
	UserID     string
	Email      string
	Roles      []domain.Role
	ActiveRole domain.Role
	// TokenID is the jti claim of the issuing token, used for revocation.
	TokenID   string
	ExpiresAt time.Time
}

// HasRole reports whether the session's underlying user holds role.
func (s Session) HasRole(role domain.Role) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}
