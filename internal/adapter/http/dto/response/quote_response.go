package response

import (
	"time"

	"ofair/internal/domain/entities"
)

type QuoteResponse struct {
	ID               string    `json:"id"`
	RequestID        string    `json:"request_id"`
	ProfessionalID   string    `json:"professional_id"`
	ProfessionalName string    `json:"professional_name"`
	Phone            string    `json:"phone"`
	Profession       string    `json:"profession"`
	Price            float64   `json:"price"`
	Description      string    `json:"description"`
	EstimatedTime    string    `json:"estimated_time"`
	MediaURLs        []string  `json:"media_urls"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:               q.ID,
		RequestID:        q.RequestID,
		ProfessionalID:   q.ProfessionalID,
		ProfessionalName: q.ProfessionalName,
		Phone:            q.Phone,
		Profession:       q.Profession,
		Price:            q.Price,
		Description:      q.Description,
		EstimatedTime:    q.EstimatedTime,
		MediaURLs:        q.MediaURLs,
		Status:           string(q.Status),
		CreatedAt:        q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
