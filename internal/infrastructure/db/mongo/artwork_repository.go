package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/artisan-works/commission-system/internal/core/domain"
)

const artworksCollection = "artworks"

// ArtworkRepository implements ports.ArtworkRepository on MongoDB.
type ArtworkRepository struct {
	col *mongo.Collection
}

func NewArtworkRepository(db *mongo.Database) *ArtworkRepository {
	return &ArtworkRepository{col: db.Collection(artworksCollection)}
}

func (r *ArtworkRepository) Create(ctx context.Context, a *domain.Artwork) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *ArtworkRepository) FindByID(ctx context.Context, id string) (*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Artwork
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArtworkNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByOwner returns the owner's artworks newest-first.
func (r *ArtworkRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Artwork, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*domain.Artwork, 0)
	for cur.Next(ctx) {
		var a domain.Artwork
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, cur.Err()
}

// EnsureIndexes creates the owner index used by gallery listings.
func (r *ArtworkRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
