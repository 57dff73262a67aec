package ports

import (
	"context"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// ImageGenerator is the external image synthesis collaborator. The service
// only stores the returned handle and performs no validation of its content.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ArtworkService defines use-case operations for the artwork catalog.
type ArtworkService interface {
	// Generate calls the image synthesis collaborator and stores the result
	// as an artwork owned by the session's user. Requires the buyer role; a
	// generation failure leaves the catalog unchanged.
	Generate(ctx context.Context, session Session, prompt string) (*domain.Artwork, error)
	// ListMine returns the caller's gallery, most-recent-first.
	ListMine(ctx context.Context, session Session) ([]*domain.Artwork, error)
}
