package request

import (
	"ofair/internal/domain/entities"
)

// AcceptQuoteRequest is the body of the accept endpoint. The quote id comes
// from the path; only the chosen payment method travels in the payload.
type AcceptQuoteRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

func (r AcceptQuoteRequest) ResolvePaymentMethod() (entities.PaymentMethod, error) {
	return entities.ParsePaymentMethod(r.PaymentMethod)
}
