package entities

import (
	"errors"
	"strings"
	"time"
)

// QuoteStatus represents a professional's bid state against a request.
//
// Invariant: for a given request, at most one quote may be accepted at any
// time; every other quote for that request is pending or rejected.

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// PaymentMethod is how the user chose to pay an accepted quote.

type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCredit PaymentMethod = "credit"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentMethodCash:
		return PaymentMethodCash, nil
	case PaymentMethodCredit:
		return PaymentMethodCredit, nil
	}
	return "", ErrUnknownPaymentMethod
}

// Quote is a professional's bid against a Request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
//
// MediaKeys hold object-store keys (or absolute URLs for legacy rows); the
// quote store resolves keys to presigned URLs when a media store is wired.

type Quote struct {
	ID               string      `json:"id"`
	RequestID        string      `json:"request_id"`
	ProfessionalID   string      `json:"professional_id"`
	ProfessionalName string      `json:"professional_name"`
	Phone            string      `json:"phone,omitempty"`
	Profession       string      `json:"profession,omitempty"`
	Price            float64     `json:"price"`
	Description      string      `json:"description"`
	EstimatedTime    string      `json:"estimated_time,omitempty"`
	MediaKeys        []string    `json:"media_keys,omitempty"`
	MediaURLs        []string    `json:"media_urls,omitempty"`
	Status           QuoteStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}
