package memory

import (
	"context"
	"sync"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

// JobRepository is a mutex-guarded in-memory job store. All state machine
// mutations run under the write lock, which makes Accept and AdvanceStatus
// atomic compare-and-set operations.
type JobRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Job
	order []string // ids, most recent first
}

func NewJobRepository() *JobRepository {
	return &JobRepository{byID: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	clone := *j
	clone.Messages = append([]domain.Message(nil), j.Messages...)
	if j.ArtistID != nil {
		artistID := *j.ArtistID
		clone.ArtistID = &artistID
	}
	return &clone
}

func (r *JobRepository) Create(_ context.Context, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[j.ID] = cloneJob(j)
	r.order = append([]string{j.ID}, r.order...)
	return nil
}

func (r *JobRepository) FindByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return cloneJob(j), nil
}

func (r *JobRepository) List(_ context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Job, 0)
	for _, id := range r.order {
		j := r.byID[id]
		switch filter.View {
		case ports.JobViewBoard:
			if j.Status != domain.StatusPending {
				continue
			}
		case ports.JobViewBuyer:
			if j.BuyerID != filter.UserID {
				continue
			}
		case ports.JobViewArtist:
			if j.ArtistID == nil || *j.ArtistID != filter.UserID {
				continue
			}
		}
		out = append(out, cloneJob(j))
	}
	return out, nil
}

// Accept claims a pending, unassigned job for artistID. The first caller
// wins; anyone else observes the job already accepted.
func (r *JobRepository) Accept(_ context.Context, jobID, artistID string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.byID[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status != domain.StatusPending || j.ArtistID != nil {
		return nil, domain.ErrInvalidTransition
	}

	j.Status = domain.StatusAccepted
	j.ArtistID = &artistID
	return cloneJob(j), nil
}

// AdvanceStatus moves the job from exactly `from` to `to`.
func (r *JobRepository) AdvanceStatus(_ context.Context, jobID string, from, to domain.JobStatus) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.byID[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	if j.Status != from {
		return nil, domain.ErrInvalidTransition
	}

	j.Status = to
	return cloneJob(j), nil
}

func (r *JobRepository) AppendMessage(_ context.Context, jobID string, msg domain.Message) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.byID[jobID]
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	j.Messages = append(j.Messages, msg)
	return cloneJob(j), nil
}
