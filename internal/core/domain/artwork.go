package domain

import (
	"errors"
	"time"
)

var ErrArtworkNotFound = errors.New("artwork not found")
var ErrGenerationFailed = errors.New("image generation failed")

// Artwork is a generated reference image owned by the buyer who prompted it.
// Immutable once created.
type Artwork struct {
	ID          string    `json:"id" bson:"_id"`
	Prompt      string    `json:"prompt" bson:"prompt"`
	ImageHandle string    `json:"image_handle" bson:"image_handle"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
