package handler

import "github.com/artisan-works/commission-system/internal/core/domain"

func toJobArtworkResponse(a domain.Artwork) jobArtworkResponse {
	return jobArtworkResponse{
		ID:          a.ID,
		Prompt:      a.Prompt,
		ImageHandle: a.ImageHandle,
	}
}

func toMessageResponse(m domain.Message) messageResponse {
	return messageResponse{
		ID:        m.ID,
		SenderID:  m.SenderID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func toJobResponse(j *domain.Job) jobResponse {
	messages := make([]messageResponse, 0, len(j.Messages))
	for _, m := range j.Messages {
		messages = append(messages, toMessageResponse(m))
	}
	return jobResponse{
		ID:          j.ID,
		Artwork:     toJobArtworkResponse(j.Artwork),
		Title:       j.Title,
		Description: j.Description,
		Budget:      j.Budget,
		Status:      string(j.Status),
		BuyerID:     j.BuyerID,
		ArtistID:    j.ArtistID,
		Messages:    messages,
		CreatedAt:   j.CreatedAt,
	}
}

func toJobSummaryResponse(j *domain.Job) jobSummaryResponse {
	return jobSummaryResponse{
		ID:        j.ID,
		Artwork:   toJobArtworkResponse(j.Artwork),
		Title:     j.Title,
		Budget:    j.Budget,
		Status:    string(j.Status),
		BuyerID:   j.BuyerID,
		ArtistID:  j.ArtistID,
		CreatedAt: j.CreatedAt,
	}
}
