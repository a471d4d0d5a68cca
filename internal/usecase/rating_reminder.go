package usecase

import (
	"context"
	"log"
	"time"

	"ofair/internal/usecase/interfaces"
)

const reminderRunTimeout = 30 * time.Second

// RatingReminderJob is the durable form of the acceptance protocol's delayed
// follow-up: acceptances that have sat unrated for RemindAfter get one more
// rating-prompt notification. Run from cron; surviving restarts is the point
// of keeping the due-state in the accepted-quotes table instead of a timer.

type RatingReminderJob struct {
	acceptedRepo interfaces.IAcceptedQuoteRepository
	notifier     interfaces.ILifecycleNotifier
	remindAfter  time.Duration
}

func NewRatingReminderJob(acceptedRepo interfaces.IAcceptedQuoteRepository, notifier interfaces.ILifecycleNotifier, remindAfter time.Duration) *RatingReminderJob {
	if remindAfter <= 0 {
		remindAfter = 24 * time.Hour
	}
	return &RatingReminderJob{acceptedRepo: acceptedRepo, notifier: notifier, remindAfter: remindAfter}
}

// Run satisfies cron.Job.
func (j *RatingReminderJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), reminderRunTimeout)
	defer cancel()
	if err := j.RunOnce(ctx); err != nil {
		log.Printf("[reminder][job] run failed err=%v", err)
	}
}

func (j *RatingReminderJob) RunOnce(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-j.remindAfter)
	due, err := j.acceptedRepo.ListAwaitingReminder(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}
	log.Printf("[reminder][job] sending rating reminders count=%d", len(due))

	now := time.Now().UTC()
	for _, rec := range due {
		j.notifier.Notify(ctx, interfaces.KindAcceptedWithRatingPrompt, interfaces.NotifyContext{
			UserID:           rec.UserID,
			RequestID:        rec.RequestID,
			QuoteID:          rec.QuoteID,
			ProfessionalName: rec.ProfessionalName,
			Price:            rec.Price,
		})
		if err := j.acceptedRepo.MarkReminded(ctx, rec.QuoteID, now); err != nil {
			log.Printf("[reminder][job] mark-reminded failed quote_id=%s err=%v", rec.QuoteID, err)
		}
	}
	return nil
}
