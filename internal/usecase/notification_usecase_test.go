package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ofair/internal/domain/entities"
	mock_interfaces "ofair/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_ListByUser(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)

	now := time.Now().UTC()
	repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Notification{
		{ID: "n-old-read", IsRead: true, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "n-old-unread", IsRead: false, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "n-new-unread", IsRead: false, CreatedAt: now},
		{ID: "n-new-read", IsRead: true, CreatedAt: now.Add(-1 * time.Hour)},
	}, nil)

	got, err := uc.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantOrder := []string{"n-new-unread", "n-old-unread", "n-new-read", "n-old-read"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "n-1", "user-1").
			Return(entities.Notification{ID: "n-1", IsRead: true}, nil)

		n, err := uc.MarkRead(ctx, "user-1", "n-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.IsRead {
			t.Fatal("expected read notification")
		}
	})

	t.Run("missing row reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "n-404", "user-1").Return(entities.Notification{}, nil)

		if _, err := uc.MarkRead(ctx, "user-1", "n-404"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewNotificationUseCase(mock_interfaces.NewMockINotificationRepository(ctrl))

		if _, err := uc.MarkRead(ctx, "user-1", "  "); !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})
}

func TestNotificationUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)

	repo.EXPECT().Delete(gomock.Any(), "n-1", "user-1").Return(nil)

	if err := uc.Delete(ctx, "user-1", "n-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
