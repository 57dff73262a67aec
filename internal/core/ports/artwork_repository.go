package ports

import (
	"context"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// ArtworkRepository defines persistence operations for generated artworks.
type ArtworkRepository interface {
	Create(ctx context.Context, a *domain.Artwork) error
	FindByID(ctx context.Context, id string) (*domain.Artwork, error)
	// ListByOwner returns the owner's artworks most-recent-first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Artwork, error)
}
