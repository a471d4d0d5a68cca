package interfaces

import (
	"context"
	"ofair/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// MarkRead and Delete take the owning user id so a recipient can only touch
// their own rows.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (entities.Notification, error)
	Delete(ctx context.Context, id, userID string) error
}
