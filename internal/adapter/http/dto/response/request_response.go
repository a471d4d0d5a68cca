package response

import (
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase"
)

type RequestResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	QuotesCount int       `json:"quotes_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromRequest(r entities.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func FromRequestSummary(s usecase.RequestSummary) RequestResponse {
	out := FromRequest(s.Request)
	out.QuotesCount = s.QuotesCount
	return out
}

func FromRequestSummaries(summaries []usecase.RequestSummary) []RequestResponse {
	out := make([]RequestResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, FromRequestSummary(s))
	}
	return out
}
