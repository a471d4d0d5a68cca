package entities

import "time"

// AcceptedQuoteStatus tracks the accepted-quote side record after acceptance.

type AcceptedQuoteStatus string

const (
	AcceptedQuoteStatusWaitingForRating AcceptedQuoteStatus = "waiting_for_rating"
	AcceptedQuoteStatusCompleted        AcceptedQuoteStatus = "completed"
)

// AcceptedQuoteRecord is the durable side record mirroring an accepted quote.
//
// It is the authoritative "was this request really accepted" source when the
// quote row's own status is stale. Existence of a record for a request implies
// exactly one accepted quote for that request; deleting it coincides with
// reverting the quote's status.
//
// Storage model (DynamoDB):
//   - PK: quote_id (upsert-on-conflict semantics: a plain PutItem replaces)
//   - GSI1 (request_id-index): request_id

type AcceptedQuoteRecord struct {
	QuoteID          string              `json:"quote_id"`
	RequestID        string              `json:"request_id"`
	UserID           string              `json:"user_id"`
	ProfessionalID   string              `json:"professional_id"`
	ProfessionalName string              `json:"professional_name"`
	Price            float64             `json:"price"`
	PaymentMethod    PaymentMethod       `json:"payment_method"`
	Status           AcceptedQuoteStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`

	// ReminderSentAt is set once the delayed rating reminder has gone out,
	// so the reminder job does not nag the same acceptance twice.
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}
