package memory

import (
	"context"
	"sync"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// ArtworkRepository is a mutex-guarded in-memory artwork store. Insertion
// order is kept newest-first so gallery listings need no sort.
type ArtworkRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Artwork
	order []string // ids, most recent first
}

func NewArtworkRepository() *ArtworkRepository {
	return &ArtworkRepository{byID: make(map[string]*domain.Artwork)}
}

func (r *ArtworkRepository) Create(_ context.Context, a *domain.Artwork) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *a
	r.byID[a.ID] = &clone
	r.order = append([]string{a.ID}, r.order...)
	return nil
}

func (r *ArtworkRepository) FindByID(_ context.Context, id string) (*domain.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrArtworkNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *ArtworkRepository) ListByOwner(_ context.Context, ownerID string) ([]*domain.Artwork, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Artwork, 0)
	for _, id := range r.order {
		a := r.byID[id]
		if a.OwnerID != ownerID {
			continue
		}
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}
