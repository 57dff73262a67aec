package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/artisan-works/commission-system/internal/pkg/metrics"
	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// ArtworkService implements the owner-scoped artwork catalog.
type ArtworkService struct {
	repo      ports.ArtworkRepository
	generator ports.ImageGenerator
	log       zerolog.Logger
}

func NewArtworkService(repo ports.ArtworkRepository, generator ports.ImageGenerator, log zerolog.Logger) *ArtworkService {
	return &ArtworkService{repo: repo, generator: generator, log: log}
}

// Generate synthesizes an image for prompt and stores it as an artwork owned
// by the caller. Only a session acting as buyer may generate; a synthesis
// failure leaves the catalog unchanged.
func (s *ArtworkService) Generate(ctx context.Context, session ports.Session, prompt string) (*domain.Artwork, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if session.ActiveRole != domain.RoleBuyer {
		return nil, domain.ErrForbidden
	}

	handle, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", session.UserID).Msg("image generation failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	artwork := &domain.Artwork{
		ID:          uuid.NewString(),
		Prompt:      prompt,
		ImageHandle: handle,
		OwnerID:     session.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, artwork); err != nil {
		s.log.Error().Err(err).Msg("failed to store artwork")
		return nil, err
	}

	metrics.ArtworksGeneratedTotal.Inc()
	s.log.Info().Str("artwork_id", artwork.ID).Str("owner_id", artwork.OwnerID).Msg("artwork generated")

	return artwork, nil
}

// ListMine returns the caller's gallery, most-recent-first.
func (s *ArtworkService) ListMine(ctx context.Context, session ports.Session) ([]*domain.Artwork, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.repo.ListByOwner(ctx, session.UserID)
}
