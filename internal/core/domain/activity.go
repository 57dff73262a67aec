package domain

import "time"

// JobActivity is an audit record of one lifecycle event on a job. Activities
// are recorded asynchronously and never read back on the request path.
type JobActivity struct {
	JobID     string    `json:"job_id" bson:"job_id"`
	Status    JobStatus `json:"status" bson:"status"`
	ActorID   string    `json:"actor_id" bson:"actor_id"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
