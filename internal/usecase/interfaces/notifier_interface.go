package interfaces

import "context"

// NotificationKind keys the lifecycle transitions the notifier knows how to
// translate into user-facing notifications and popups.

type NotificationKind string

const (
	KindAlreadyAccepted          NotificationKind = "alreadyAccepted"
	KindAcceptError              NotificationKind = "acceptError"
	KindPaymentRedirect          NotificationKind = "paymentRedirect"
	KindAccepted                 NotificationKind = "accepted"
	KindAcceptedWithRatingPrompt NotificationKind = "acceptedWithRatingPrompt"
	KindGeneralError             NotificationKind = "generalError"
	KindCancelled                NotificationKind = "cancelled"
	KindRejected                 NotificationKind = "rejected"
)

// NotifyContext carries the lifecycle facts a notification message may need.

type NotifyContext struct {
	UserID           string
	RequestID        string
	QuoteID          string
	ProfessionalName string
	Price            float64
}

// ILifecycleNotifier is the fire-and-forget side channel posting user-facing
// notifications keyed to lifecycle transitions. It must never block or fail
// the coordinators' state transitions; implementations log their own errors.

type ILifecycleNotifier interface {
	Notify(ctx context.Context, kind NotificationKind, nc NotifyContext)
}
