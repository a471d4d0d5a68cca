package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// LifecycleNotifier writes Notification rows for lifecycle transitions. It is
// strictly fire-and-forget: persistence failures are logged and swallowed so
// a broken notification channel can never fail or roll back a transition.

type LifecycleNotifier struct {
	repo interfaces.INotificationRepository
}

var _ interfaces.ILifecycleNotifier = (*LifecycleNotifier)(nil)

func NewLifecycleNotifier(repo interfaces.INotificationRepository) *LifecycleNotifier {
	return &LifecycleNotifier{repo: repo}
}

func (n *LifecycleNotifier) Notify(ctx context.Context, kind interfaces.NotificationKind, nc interfaces.NotifyContext) {
	if nc.UserID == "" {
		log.Printf("[notify] dropped kind=%s: no user", kind)
		return
	}

	notification, ok := buildNotification(kind, nc)
	if !ok {
		log.Printf("[notify] unknown kind=%s", kind)
		return
	}
	notification.ID = uuid.NewString()
	notification.UserID = nc.UserID
	notification.CreatedAt = time.Now().UTC()

	if _, err := n.repo.Create(ctx, notification); err != nil {
		log.Printf("[notify] create failed kind=%s user_id=%s err=%v", kind, nc.UserID, err)
	}
}

func buildNotification(kind interfaces.NotificationKind, nc interfaces.NotifyContext) (entities.Notification, bool) {
	requestURL := "/requests/" + nc.RequestID

	switch kind {
	case interfaces.KindAlreadyAccepted:
		return entities.Notification{
			Type:      entities.NotificationTypeQuote,
			Title:     "Quote already accepted",
			Message:   "A quote for this request was already accepted, so nothing was changed.",
			ActionURL: requestURL,
		}, true
	case interfaces.KindAcceptError:
		return entities.Notification{
			Type:    entities.NotificationTypeSystem,
			Title:   "Could not accept quote",
			Message: "Something went wrong while accepting the quote. Please try again.",
		}, true
	case interfaces.KindPaymentRedirect:
		return entities.Notification{
			Type:    entities.NotificationTypeSystem,
			Title:   "Redirecting to payment",
			Message: "You are being taken to the secure payment page to complete the order.",
		}, true
	case interfaces.KindAccepted:
		return entities.Notification{
			Type:      entities.NotificationTypeQuote,
			Title:     "Quote accepted",
			Message:   fmt.Sprintf("You accepted %s's quote (%.0f ILS). The professional will be in touch.", nc.ProfessionalName, nc.Price),
			ActionURL: requestURL,
		}, true
	case interfaces.KindAcceptedWithRatingPrompt:
		return entities.Notification{
			Type:        entities.NotificationTypeReminder,
			Title:       "Rate your professional",
			Message:     fmt.Sprintf("Once the work is done, let others know how %s did.", nc.ProfessionalName),
			ActionURL:   requestURL + "/rating",
			ActionLabel: "Rate now",
		}, true
	case interfaces.KindGeneralError:
		return entities.Notification{
			Type:    entities.NotificationTypeSystem,
			Title:   "Something went wrong",
			Message: "We could not complete the action. Please refresh and try again.",
		}, true
	case interfaces.KindCancelled:
		return entities.Notification{
			Type:      entities.NotificationTypeQuote,
			Title:     "Acceptance cancelled",
			Message:   "The accepted quote was cancelled and your request is open for quotes again.",
			ActionURL: requestURL,
		}, true
	case interfaces.KindRejected:
		return entities.Notification{
			Type:    entities.NotificationTypeMessage,
			Title:   "Message sent to professional",
			Message: fmt.Sprintf("We let %s know you chose not to proceed with their quote.", nc.ProfessionalName),
		}, true
	}
	return entities.Notification{}, false
}
