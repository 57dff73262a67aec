package ports

import (
	"context"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// CreateJobInput carries all data needed to commission a job from an
// existing artwork.
type CreateJobInput struct {
	ArtworkID   string
	Title       string
	Description string
	Budget      float64
}

// JobService defines use-case operations for the commission lifecycle and
// the per-job chat thread.
type JobService interface {
	// Create commissions a job from an artwork owned by the session's buyer.
	Create(ctx context.Context, session Session, input CreateJobInput) (*domain.Job, error)
	// UpdateStatus applies a single forward transition. Accepting requires
	// the artist role and claims the job for the caller; later transitions
	// are restricted to the job's assigned artist.
	UpdateStatus(ctx context.Context, session Session, jobID string, next domain.JobStatus) (*domain.Job, error)
	// Get returns the job detail; restricted to the job's participants,
	// except pending jobs which any artist may inspect from the board.
	Get(ctx context.Context, session Session, jobID string) (*domain.Job, error)
	List(ctx context.Context, session Session, view JobListView) ([]*domain.Job, error)
	// AddMessage appends a chat message authored by the session's user.
	AddMessage(ctx context.Context, session Session, jobID, text string) (*domain.Message, error)
	// ListMessages returns the job's chat thread in append order.
	ListMessages(ctx context.Context, session Session, jobID string) ([]domain.Message, error)
}
