package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createJobRequest struct {
	ArtworkID   string  `json:"artwork_id"  validate:"required"`
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget"      validate:"required,gt=0"`
}

type updateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted in_progress completed"`
}

type addMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// Response-only types owned by the transport layer so the JSON contract is
// not coupled to internal service changes.

type jobArtworkResponse struct {
	ID          string `json:"id"`
	Prompt      string `json:"prompt"`
	ImageHandle string `json:"image_handle"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"sender_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type jobResponse struct {
	ID          string             `json:"id"`
	Artwork     jobArtworkResponse `json:"artwork"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Budget      float64            `json:"budget"`
	Status      string             `json:"status"`
	BuyerID     string             `json:"buyer_id"`
	ArtistID    *string            `json:"artist_id"`
	Messages    []messageResponse  `json:"messages"`
	CreatedAt   time.Time          `json:"created_at"`
}

// jobSummaryResponse is the lightweight item used in list responses. It
// intentionally omits the message thread to keep payloads small.
type jobSummaryResponse struct {
	ID        string             `json:"id"`
	Artwork   jobArtworkResponse `json:"artwork"`
	Title     string             `json:"title"`
	Budget    float64            `json:"budget"`
	Status    string             `json:"status"`
	BuyerID   string             `json:"buyer_id"`
	ArtistID  *string            `json:"artist_id"`
	CreatedAt time.Time          `json:"created_at"`
}
