package memory

import (
	"context"
	"sync"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

// ActivitySink keeps the job audit trail in process memory.
type ActivitySink struct {
	mu      sync.Mutex
	records []domain.JobActivity
}

func NewActivitySink() *ActivitySink {
	return &ActivitySink{}
}

func (s *ActivitySink) Record(_ context.Context, activity *domain.JobActivity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *activity)
	return nil
}

// Records returns a snapshot of everything recorded so far.
func (s *ActivitySink) Records() []domain.JobActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.JobActivity(nil), s.records...)
}
