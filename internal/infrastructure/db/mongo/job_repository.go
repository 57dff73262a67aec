package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artisan-works/commission-system/internal/core/domain"
	"github.com/artisan-works/commission-system/internal/core/ports"
)

const jobsCollection = "jobs"

// JobRepository implements ports.JobRepository on MongoDB. State machine
// mutations use filtered FindOneAndUpdate so the compare-and-set happens
// server-side: concurrent accepts resolve to exactly one winner.
type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(jobsCollection)}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, j)
	return err
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *JobRepository) List(ctx context.Context, filter ports.ListJobsFilter) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	switch filter.View {
	case ports.JobViewBoard:
		query["status"] = string(domain.StatusPending)
	case ports.JobViewBuyer:
		query["buyer_id"] = filter.UserID
	case ports.JobViewArtist:
		query["artist_id"] = filter.UserID
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*domain.Job, 0)
	for cur.Next(ctx) {
		var j domain.Job
		if err := cur.Decode(&j); err != nil {
			return nil, err
		}
		out = append(out, &j)
	}
	return out, cur.Err()
}

// Accept claims a pending, unassigned job for artistID.
func (r *JobRepository) Accept(ctx context.Context, jobID, artistID string) (*domain.Job, error) {
	filter := bson.M{
		"_id":       jobID,
		"status":    string(domain.StatusPending),
		"artist_id": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"status":    string(domain.StatusAccepted),
		"artist_id": artistID,
	}}
	return r.findOneAndUpdate(ctx, jobID, filter, update)
}

// AdvanceStatus moves the job from exactly `from` to `to`.
func (r *JobRepository) AdvanceStatus(ctx context.Context, jobID string, from, to domain.JobStatus) (*domain.Job, error) {
	filter := bson.M{"_id": jobID, "status": string(from)}
	update := bson.M{"$set": bson.M{"status": string(to)}}
	return r.findOneAndUpdate(ctx, jobID, filter, update)
}

func (r *JobRepository) AppendMessage(ctx context.Context, jobID string, msg domain.Message) (*domain.Job, error) {
	filter := bson.M{"_id": jobID}
	update := bson.M{"$push": bson.M{"messages": msg}}
	return r.findOneAndUpdate(ctx, jobID, filter, update)
}

// findOneAndUpdate applies update where filter matches and returns the new
// document. A miss on a job that exists means the CAS condition failed.
func (r *JobRepository) findOneAndUpdate(ctx context.Context, jobID string, filter, update bson.M) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var j domain.Job
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&j)
	if err == nil {
		return &j, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if err := r.col.FindOne(ctx, bson.M{"_id": jobID}).Err(); errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrJobNotFound
	}
	return nil, domain.ErrInvalidTransition
}

// EnsureIndexes creates the listing indexes for the job board and the two
// "my jobs" views.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "buyer_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "artist_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
