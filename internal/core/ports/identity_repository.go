package ports

import (
	"context"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// UserRepository defines the interface for user identity persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// AddRole appends role to the stored role set of the user, so that future
	// logins observe it. No-op when the role is already held.
	AddRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error)
}
