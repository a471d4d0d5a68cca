package entities

import "time"

// RequestStatus represents the lifecycle of a service request.
//
// Domain notes:
//   - A request is "active" while quotes are being collected.
//   - Accepting a quote moves it to "waiting_for_rating"; the user's rating
//     moves it to "completed". Cancelling an acceptance moves it back to
//     "active" so the remaining quotes can compete again.

type RequestStatus string

const (
	RequestStatusActive           RequestStatus = "active"
	RequestStatusWaitingForRating RequestStatus = "waiting_for_rating"
	RequestStatusCompleted        RequestStatus = "completed"
	RequestStatusExpired          RequestStatus = "expired"
	RequestStatusCanceled         RequestStatus = "canceled"
)

// Request is a unit of work a homeowner wants quotes for.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Invariant: at most one in-flight acceptance per request — waiting_for_rating
// implies exactly one accepted quote exists for it.

type Request struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
