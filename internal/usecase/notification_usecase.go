package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// INotificationUseCase exposes the recipient-side notification operations.
// Creation belongs to the lifecycle notifier, never to this surface.

type INotificationUseCase interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, userID, id string) (entities.Notification, error)
	Delete(ctx context.Context, userID, id string) error
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

func (u *NotificationUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	items, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Unread first, newest first within each group.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsRead != items[j].IsRead {
			return !items[i].IsRead
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) Delete(ctx context.Context, userID, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNotificationID
	}
	return u.repo.Delete(ctx, id, userID)
}
