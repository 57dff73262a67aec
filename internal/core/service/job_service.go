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

// JobService implements the commission lifecycle state machine and the
// per-job chat thread.
type JobService struct {
	jobs     ports.JobRepository
	artworks ports.ArtworkRepository
	activity ports.ActivityDispatcher
	log      zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, artworks ports.ArtworkRepository, activity ports.ActivityDispatcher, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, artworks: artworks, activity: activity, log: log}
}

// Create commissions a job from an artwork owned by the session's buyer.
func (s *JobService) Create(ctx context.Context, session ports.Session, input ports.CreateJobInput) (*domain.Job, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	if session.ActiveRole != domain.RoleBuyer {
		return nil, domain.ErrForbidden
	}
	if input.Budget <= 0 {
		return nil, domain.ErrInvalidBudget
	}

	artwork, err := s.artworks.FindByID(ctx, input.ArtworkID)
	if err != nil {
		return nil, err
	}
	if artwork.OwnerID != session.UserID {
		return nil, domain.ErrForbidden
	}

	job := &domain.Job{
		ID:          uuid.NewString(),
		Artwork:     *artwork,
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Status:      domain.StatusPending,
		BuyerID:     session.UserID,
		ArtistID:    nil,
		Messages:    []domain.Message{},
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		s.log.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	metrics.JobsCreatedTotal.Inc()
	s.activity.Enqueue(domain.JobActivity{
		JobID:     job.ID,
		Status:    domain.StatusPending,
		ActorID:   session.UserID,
		Timestamp: job.CreatedAt,
	})
	s.log.Info().Str("job_id", job.ID).Str("buyer_id", job.BuyerID).Float64("budget", job.Budget).Msg("job created")

	return job, nil
}

// UpdateStatus applies one forward transition of the job state machine.
//
// Accepting claims a pending job for the calling artist; the repository's
// compare-and-set guarantees that two concurrent accepts resolve to exactly
// one winner. In-progress and completed moves are restricted to the job's
// assigned artist.
func (s *JobService) UpdateStatus(ctx context.Context, session ports.Session, jobID string, next domain.JobStatus) (*domain.Job, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !job.Status.CanTransitionTo(next) {
		metrics.TransitionErrorsTotal.WithLabelValues("invalid_transition").Inc()
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, job.Status, next)
	}

	var updated *domain.Job
	switch next {
	case domain.StatusAccepted:
		if session.ActiveRole != domain.RoleArtist {
			metrics.TransitionErrorsTotal.WithLabelValues("forbidden").Inc()
			return nil, domain.ErrForbidden
		}
		updated, err = s.jobs.Accept(ctx, jobID, session.UserID)
	default:
		if job.ArtistID == nil || *job.ArtistID != session.UserID {
			metrics.TransitionErrorsTotal.WithLabelValues("forbidden").Inc()
			return nil, domain.ErrForbidden
		}
		updated, err = s.jobs.AdvanceStatus(ctx, jobID, job.Status, next)
	}
	if err != nil {
		metrics.TransitionErrorsTotal.WithLabelValues("conflict").Inc()
		return nil, err
	}

	metrics.JobTransitionsTotal.WithLabelValues(string(next)).Inc()
	s.activity.Enqueue(domain.JobActivity{
		JobID:     jobID,
		Status:    next,
		ActorID:   session.UserID,
		Timestamp: time.Now().UTC(),
	})
	s.log.Info().Str("job_id", jobID).Str("status", string(next)).Str("actor", session.UserID).Msg("job status updated")

	return updated, nil
}

// Get returns the full job view. Pending jobs are visible to any
// authenticated user (the board shows them); everything later is restricted
// to the job's two participants.
func (s *JobService) Get(ctx context.Context, session ports.Session, jobID string) (*domain.Job, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.StatusPending && !job.IsParticipant(session.UserID) {
		return nil, domain.ErrForbidden
	}
	return job, nil
}

// List returns the requested job view, most-recent-first. The board is every
// pending job; buyer and artist views are scoped to the caller.
func (s *JobService) List(ctx context.Context, session ports.Session, view ports.JobListView) ([]*domain.Job, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.jobs.List(ctx, ports.ListJobsFilter{View: view, UserID: session.UserID})
}

// AddMessage appends a chat message to the job's thread. Only the job's
// buyer and assigned artist may post.
func (s *JobService) AddMessage(ctx context.Context, session ports.Session, jobID, text string) (*domain.Message, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsParticipant(session.UserID) {
		return nil, domain.ErrForbidden
	}

	msg := domain.Message{
		ID:        uuid.NewString(),
		SenderID:  session.UserID,
		Text:      text,
		Timestamp: time.Now().UTC(),
	}

	if _, err := s.jobs.AppendMessage(ctx, jobID, msg); err != nil {
		s.log.Error().Err(err).Str("job_id", jobID).Msg("failed to append message")
		return nil, err
	}

	metrics.MessagesPostedTotal.Inc()
	return &msg, nil
}

// ListMessages returns the chat thread in append order.
func (s *JobService) ListMessages(ctx context.Context, session ports.Session, jobID string) ([]domain.Message, error) {
	if session.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.IsParticipant(session.UserID) {
		return nil, domain.ErrForbidden
	}
	return job.Messages, nil
}
