package ports

import (
	"context"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// ActivitySink persists job audit records. Failures are logged, never
// surfaced to the request that produced the activity.
type ActivitySink interface {
	Record(ctx context.Context, activity *domain.JobActivity) error
}

// ActivityDispatcher is the interface services use to hand off an audit
// record for asynchronous processing.
type ActivityDispatcher interface {
	Enqueue(activity domain.JobActivity)
}
