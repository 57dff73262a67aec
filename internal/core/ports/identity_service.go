package ports

import (
	"context"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// AuthResult is returned by every session-establishing operation. Token is a
// signed bearer token embedding the session; ActiveRole is the role the new
// session acts under.
type AuthResult struct {
	Token      string
	User       *domain.User
	ActiveRole domain.Role
}

// IdentityService implements registration, login and role management.
//
// Login intentionally accepts but does not verify the password: credential
// verification is a trusted external step in this system, and a login fails
// only when no account matches the email.
type IdentityService interface {
	Signup(ctx context.Context, email, password string, role domain.Role) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// SocialLogin resolves the deterministic account of a provider. When role
	// is non-nil and the account does not exist, it registers one with that
	// role; when role is nil and the account is absent it fails with
	// domain.ErrNoAccount.
	SocialLogin(ctx context.Context, provider string, role *domain.Role) (*AuthResult, error)
	// Logout revokes the session's token. Idempotent.
	Logout(ctx context.Context, session Session) error
	// SwitchRole re-issues the session under role; fails with
	// domain.ErrRoleNotHeld when the user does not hold it.
	SwitchRole(ctx context.Context, session Session, role domain.Role) (*AuthResult, error)
	// AddRole grants role to the user record and switches the session to it.
	// Already-held roles switch the session without touching the store.
	AddRole(ctx context.Context, session Session, role domain.Role) (*AuthResult, error)
}
