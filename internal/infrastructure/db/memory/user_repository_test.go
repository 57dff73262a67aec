package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

func newTestUser(id, email string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:        id,
		Email:     email,
		Roles:     []domain.Role{domain.RoleBuyer},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := repo.Create(ctx, newTestUser("u2", "ana@example.com"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_AddRole_PersistsForLaterLookups(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.AddRole(ctx, "u1", domain.RoleArtist); err != nil {
		t.Fatalf("add role failed: %v", err)
	}

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if !byEmail.HasRole(domain.RoleArtist) {
		t.Error("granted role must be visible on later email lookups")
	}
	if byEmail.FirstRole() != domain.RoleBuyer {
		t.Errorf("signup role must stay first, got %s", byEmail.FirstRole())
	}
}

func TestUserRepository_AddRole_Idempotent(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	user, err := repo.AddRole(ctx, "u1", domain.RoleBuyer)
	if err != nil {
		t.Fatalf("add role failed: %v", err)
	}
	if len(user.Roles) != 1 {
		t.Errorf("re-adding a held role must not duplicate it, got %v", user.Roles)
	}
}

func TestUserRepository_Find_ReturnsIsolatedCopy(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, newTestUser("u1", "ana@example.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, _ := repo.FindByID(ctx, "u1")
	got.Roles = append(got.Roles, domain.RoleArtist)

	fresh, _ := repo.FindByID(ctx, "u1")
	if len(fresh.Roles) != 1 {
		t.Error("mutating a returned user must not affect the store")
	}
}
