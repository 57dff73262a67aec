package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

const activityCollection = "job_activity"

// ActivitySink persists the job audit trail to the job_activity collection.
type ActivitySink struct {
	col *mongo.Collection
}

func NewActivitySink(db *mongo.Database) *ActivitySink {
	return &ActivitySink{col: db.Collection(activityCollection)}
}

func (s *ActivitySink) Record(ctx context.Context, activity *domain.JobActivity) error {
	doc := bson.M{
		"job_id":      activity.JobID,
		"status":      string(activity.Status),
		"actor_id":    activity.ActorID,
		"timestamp":   activity.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	_, err := s.col.InsertOne(ctx, doc)
	return err
}
