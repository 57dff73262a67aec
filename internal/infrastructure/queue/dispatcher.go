package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes job audit activities to a fixed set of workers using
// consistent hashing on the job id, guaranteeing per-job record ordering.
type Dispatcher struct {
	workers []chan domain.JobActivity
	sink    ports.ActivitySink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink ports.ActivitySink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.JobActivity, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.JobActivity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an activity to the worker responsible for its job id.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(activity domain.JobActivity) {
	d.workers[d.shardIndex(activity.JobID)] <- activity
}

// shardIndex maps a job id deterministically to a worker index.
func (d *Dispatcher) shardIndex(jobID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(jobID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.JobActivity) {
	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sink.Record(ctx, &activity); err != nil {
				d.log.Error().Err(err).
					Str("job_id", activity.JobID).
					Int("worker_id", id).
					Msg("activity recording failed")
			}
		}
	}
}
