package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"
	mock_interfaces "ofair/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRatingReminderJob_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("due acceptances get a reminder and are marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		acceptedRepo := mock_interfaces.NewMockIAcceptedQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockILifecycleNotifier(ctrl)
		job := NewRatingReminderJob(acceptedRepo, notifier, 24*time.Hour)

		due := []entities.AcceptedQuoteRecord{
			{QuoteID: "q-1", RequestID: "req-1", UserID: "user-1", ProfessionalName: "Avi", Price: 350},
			{QuoteID: "q-2", RequestID: "req-2", UserID: "user-2", ProfessionalName: "Dana", Price: 900},
		}
		acceptedRepo.EXPECT().ListAwaitingReminder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cutoff time.Time) ([]entities.AcceptedQuoteRecord, error) {
				if until := time.Until(cutoff); until > -23*time.Hour {
					t.Errorf("cutoff should sit about a day in the past, got %v", cutoff)
				}
				return due, nil
			})
		notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAcceptedWithRatingPrompt, gomock.Any()).Times(2)
		acceptedRepo.EXPECT().MarkReminded(gomock.Any(), "q-1", gomock.Any()).Return(nil)
		acceptedRepo.EXPECT().MarkReminded(gomock.Any(), "q-2", gomock.Any()).Return(nil)

		if err := job.RunOnce(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nothing due is a quiet pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		acceptedRepo := mock_interfaces.NewMockIAcceptedQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockILifecycleNotifier(ctrl)
		job := NewRatingReminderJob(acceptedRepo, notifier, 24*time.Hour)

		acceptedRepo.EXPECT().ListAwaitingReminder(gomock.Any(), gomock.Any()).Return(nil, nil)

		if err := job.RunOnce(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		acceptedRepo := mock_interfaces.NewMockIAcceptedQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockILifecycleNotifier(ctrl)
		job := NewRatingReminderJob(acceptedRepo, notifier, 24*time.Hour)

		acceptedRepo.EXPECT().ListAwaitingReminder(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamo down"))

		if err := job.RunOnce(ctx); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("mark failure does not stop the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		acceptedRepo := mock_interfaces.NewMockIAcceptedQuoteRepository(ctrl)
		notifier := mock_interfaces.NewMockILifecycleNotifier(ctrl)
		job := NewRatingReminderJob(acceptedRepo, notifier, 24*time.Hour)

		due := []entities.AcceptedQuoteRecord{
			{QuoteID: "q-1", UserID: "user-1"},
			{QuoteID: "q-2", UserID: "user-2"},
		}
		acceptedRepo.EXPECT().ListAwaitingReminder(gomock.Any(), gomock.Any()).Return(due, nil)
		notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAcceptedWithRatingPrompt, gomock.Any()).Times(2)
		acceptedRepo.EXPECT().MarkReminded(gomock.Any(), "q-1", gomock.Any()).Return(errors.New("dynamo throttled"))
		acceptedRepo.EXPECT().MarkReminded(gomock.Any(), "q-2", gomock.Any()).Return(nil)

		if err := job.RunOnce(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-positive interval falls back to a day", func(t *testing.T) {
		job := NewRatingReminderJob(nil, nil, 0)
		if job.remindAfter != 24*time.Hour {
			t.Fatalf("expected 24h default, got %v", job.remindAfter)
		}
	})
}
