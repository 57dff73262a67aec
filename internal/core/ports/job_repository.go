package ports

import (
	"context"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// JobListView selects which slice of the job store a listing returns.
type JobListView string

const (
	// JobViewBoard lists all jobs still open for acceptance (status pending).
	JobViewBoard JobListView = "board"
	// JobViewBuyer lists jobs created by a given buyer.
	JobViewBuyer JobListView = "buyer"
	// JobViewArtist lists jobs assigned to a given artist.
	JobViewArtist JobListView = "artist"
)

// ListJobsFilter carries the query parameters for listing jobs. UserID scopes
// the buyer and artist views; it is ignored for the board.
type ListJobsFilter struct {
	View   JobListView
	UserID string
}

// JobRepository defines persistence operations for commission jobs. The
// mutating operations are the single authoritative write path per job: each
// implementation must apply them atomically so concurrent callers observe
// exactly one winner.
type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// List returns jobs matching filter, most-recent-first.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, error)
	// Accept assigns artistID to a still-pending, unassigned job and moves it
	// to accepted. A job already claimed fails with domain.ErrInvalidTransition
	// and keeps its original artist.
	Accept(ctx context.Context, jobID, artistID string) (*domain.Job, error)
	// AdvanceStatus moves the job from exactly `from` to `to` (compare and
	// set). Fails with domain.ErrInvalidTransition when the stored status no
	// longer matches from.
	AdvanceStatus(ctx context.Context, jobID string, from, to domain.JobStatus) (*domain.Job, error)
	// AppendMessage appends msg to the job's chat thread.
	AppendMessage(ctx context.Context, jobID string, msg domain.Message) (*domain.Job, error)
}
