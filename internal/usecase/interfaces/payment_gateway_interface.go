package interfaces

import "context"

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Credit acceptances create a hosted checkout and hand the redirect URL back
// to the caller; the accepted state is persisted before this runs, so an
// abandoned redirect does not leave data inconsistent.

type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, quoteID, title string, price float64) (redirectURL string, err error)
}
