// Package memory provides the in-process repository implementations. Each
// repository serializes access to its collection with a single RWMutex, so
// concurrent mutations on the same entity resolve to exactly one winner.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// UserRepository is a mutex-guarded in-memory user store keyed by id.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.User
	byEmail map[string]string // email -> id
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Roles = append([]domain.Role(nil), u.Roles...)
	return &clone
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}

	stored := cloneUser(user)
	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID
	return cloneUser(stored), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.byID[id]), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *UserRepository) AddRole(_ context.Context, userID string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if !user.HasRole(role) {
		user.Roles = append(user.Roles, role)
		user.UpdatedAt = time.Now().UTC()
	}
	return cloneUser(user), nil
}
