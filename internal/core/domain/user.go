package domain

import (
	"errors"
	"time"
)

// Role is the marketplace-facing capability of a user. A user may hold both
// roles at once but never zero.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleArtist Role = "artist"
)

// ParseRole converts a wire string into a Role, rejecting anything outside
// the two known variants.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer:
		return RoleBuyer, nil
	case RoleArtist:
		return RoleArtist, nil
	default:
		return "", ErrInvalidRole
	}
}

var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrNoAccount = errors.New("no account found for this provider")
var ErrRoleNotHeld = errors.New("role not held by user")
var ErrNotAuthenticated = errors.New("not authenticated")

// User models a registered marketplace account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user currently holds role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FirstRole returns the role granted first (the signup role). Roles is
// non-empty for every persisted user; the fallback only guards a zero value.
func (u *User) FirstRole() Role {
	if len(u.Roles) == 0 {
		return RoleBuyer
	}
	return u.Roles[0]
}
