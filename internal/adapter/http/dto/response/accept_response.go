package response

import "ofair/internal/usecase"

// AcceptQuoteResponse reports the outcome of an accept. RedirectURL is set
// only for credit acceptances; AlreadyAccepted signals the idempotent path
// where the quote had been accepted before this call.
type AcceptQuoteResponse struct {
	Quote           QuoteResponse `json:"quote"`
	AlreadyAccepted bool          `json:"already_accepted"`
	RedirectURL     string        `json:"redirect_url,omitempty"`
}

func FromAcceptResult(res usecase.AcceptResult) AcceptQuoteResponse {
	return AcceptQuoteResponse{
		Quote:           FromQuote(res.Quote),
		AlreadyAccepted: res.AlreadyAccepted,
		RedirectURL:     res.RedirectURL,
	}
}

// RejectQuoteResponse reports the outcome of a reject. Cancelled is true when
// the call rolled back a previous acceptance rather than declining a pending
// quote.
type RejectQuoteResponse struct {
	Quote     QuoteResponse `json:"quote"`
	Cancelled bool          `json:"cancelled"`
}

func FromRejectResult(res usecase.RejectResult) RejectQuoteResponse {
	return RejectQuoteResponse{
		Quote:     FromQuote(res.Quote),
		Cancelled: res.Cancelled,
	}
}
