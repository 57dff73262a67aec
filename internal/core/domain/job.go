package domain

import (
	"errors"
	"time"
)

// JobStatus represents the lifecycle state of a commission job.
type JobStatus string

const (
	StatusPending    JobStatus = "pending"
	StatusAccepted   JobStatus = "accepted"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
)

// validTransitions defines the allowed state machine transitions. The order
// is strictly forward and adjacent-only; there is no cancellation path, a
// job that never progresses simply stays where it is.
var validTransitions = map[JobStatus][]JobStatus{
	StatusPending:    {StatusAccepted},
	StatusAccepted:   {StatusInProgress},
	StatusInProgress: {StatusCompleted},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInvalidBudget = errors.New("budget must be positive")
var ErrJobNotFound = errors.New("job not found")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseJobStatus converts a wire string into a JobStatus.
func ParseJobStatus(s string) (JobStatus, error) {
	switch JobStatus(s) {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted:
		return JobStatus(s), nil
	default:
		return "", ErrInvalidTransition
	}
}

// Message is a single chat entry on a job. Immutable once appended.
type Message struct {
	ID        string    `json:"id" bson:"id"`
	SenderID  string    `json:"sender_id" bson:"sender_id"`
	Text      string    `json:"text" bson:"text"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// Job is the commission aggregate root. BuyerID is fixed at creation;
// ArtistID is nil until exactly one artist accepts and fixed afterwards.
type Job struct {
	ID          string    `json:"id" bson:"_id"`
	Artwork     Artwork   `json:"artwork" bson:"artwork"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	Budget      float64   `json:"budget" bson:"budget"`
	Status      JobStatus `json:"status" bson:"status"`
	BuyerID     string    `json:"buyer_id" bson:"buyer_id"`
	ArtistID    *string   `json:"artist_id" bson:"artist_id,omitempty"`
	Messages    []Message `json:"messages" bson:"messages"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// IsParticipant reports whether userID is the job's buyer or its assigned
// artist. Chat and the detail view are restricted to these two.
func (j *Job) IsParticipant(userID string) bool {
	if j.BuyerID == userID {
		return true
	}
	return j.ArtistID != nil && *j.ArtistID == userID
}
