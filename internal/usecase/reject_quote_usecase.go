package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"
)

// RejectResult reports which branch ran. Cancelled is true when the quote was
// previously accepted and the acceptance was undone.

type RejectResult struct {
	Quote     entities.Quote
	Cancelled bool
}

// IRejectQuoteUseCase handles both "reject an unaccepted quote" and
// "cancel a previously accepted quote" as two branches of one operation.

type IRejectQuoteUseCase interface {
	Reject(ctx context.Context, userID, quoteID string) (RejectResult, error)
}

// RejectQuoteUseCase.
//
// Cancellation branch (quote currently accepted):
//  1. delete the accepted-quote record (already absent counts as success)
//  2. mark the quote rejected
//  3. restore the non-accepted siblings to pending (parallel)
//  4. move the request back to active
//
// Plain rejection branch (quote pending): mark the quote rejected.
// A quote that is already rejected is a success no-op, without notification.

type RejectQuoteUseCase struct {
	store        *QuoteStore
	quoteRepo    interfaces.IQuoteRepository
	requestRepo  interfaces.IRequestRepository
	acceptedRepo interfaces.IAcceptedQuoteRepository
	guard        interfaces.IOperationGuard
	notifier     interfaces.ILifecycleNotifier
}

var _ IRejectQuoteUseCase = (*RejectQuoteUseCase)(nil)

func NewRejectQuoteUseCase(
	store *QuoteStore,
	quoteRepo interfaces.IQuoteRepository,
	requestRepo interfaces.IRequestRepository,
	acceptedRepo interfaces.IAcceptedQuoteRepository,
	guard interfaces.IOperationGuard,
	notifier interfaces.ILifecycleNotifier,
) *RejectQuoteUseCase {
	return &RejectQuoteUseCase{
		store:        store,
		quoteRepo:    quoteRepo,
		requestRepo:  requestRepo,
		acceptedRepo: acceptedRepo,
		guard:        guard,
		notifier:     notifier,
	}
}

func (u *RejectQuoteUseCase) Reject(ctx context.Context, userID, quoteID string) (RejectResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return RejectResult{}, ErrInvalidQuoteID
	}
	log.Printf("[lifecycle][reject] start quote_id=%s", quoteID)

	quote, err := u.store.Lookup(ctx, quoteID)
	if err != nil {
		if errors.Is(err, ErrQuoteNotFound) {
			log.Printf("[lifecycle][reject] quote not found quote_id=%s", quoteID)
		}
		u.notifier.Notify(ctx, interfaces.KindGeneralError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID})
		return RejectResult{}, err
	}

	// Rejection is owner-scoped like acceptance: foreign callers get the same
	// not-found the request endpoints give them.
	owner, err := u.requestRepo.GetByID(ctx, quote.RequestID)
	if err != nil {
		log.Printf("[lifecycle][reject] request lookup failed request_id=%s err=%v", quote.RequestID, err)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID})
		return RejectResult{}, err
	}
	if owner.ID == "" || owner.UserID != userID {
		log.Printf("[lifecycle][reject] request not owned by caller request_id=%s", quote.RequestID)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID})
		return RejectResult{}, ErrRequestNotFound
	}

	// Rejecting an already rejected quote is a no-op that still succeeds.
	if quote.Status == entities.QuoteStatusRejected {
		log.Printf("[lifecycle][reject] already rejected quote_id=%s", quoteID)
		return RejectResult{Quote: quote}, nil
	}

	requestID := quote.RequestID
	nc := interfaces.NotifyContext{
		UserID:           userID,
		RequestID:        requestID,
		QuoteID:          quoteID,
		ProfessionalName: quote.ProfessionalName,
		Price:            quote.Price,
	}

	token, err := u.guard.Acquire(ctx, requestID)
	if err != nil {
		return RejectResult{}, err
	}
	defer func() {
		if err := u.guard.Release(ctx, requestID, token); err != nil {
			log.Printf("[lifecycle][reject] guard release failed request_id=%s err=%v", requestID, err)
		}
	}()

	if quote.Status == entities.QuoteStatusAccepted {
		return u.cancelAcceptance(ctx, quote, nc)
	}
	return u.rejectPending(ctx, quote, nc)
}

func (u *RejectQuoteUseCase) cancelAcceptance(ctx context.Context, quote entities.Quote, nc interfaces.NotifyContext) (RejectResult, error) {
	requestID := quote.RequestID

	// Step 1: drop the side record. Deletion is idempotent.
	if err := u.acceptedRepo.Delete(ctx, quote.ID); err != nil {
		log.Printf("[lifecycle][cancel] accepted-record delete failed quote_id=%s err=%v", quote.ID, err)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
		return RejectResult{}, err
	}

	// Step 2: the cancelled quote itself becomes rejected.
	updated, err := u.quoteRepo.UpdateStatus(ctx, quote.ID, entities.QuoteStatusRejected)
	if err != nil {
		log.Printf("[lifecycle][cancel] quote update failed quote_id=%s err=%v", quote.ID, err)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
		return RejectResult{}, err
	}
	if updated.ID == "" {
		u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
		return RejectResult{}, ErrQuoteNotFound
	}

	// Step 3: restore the field of candidates.
	u.restoreSiblings(ctx, requestID, quote.ID)

	// Step 4: the request is open for selection again.
	req, err := u.requestRepo.UpdateStatus(ctx, requestID, entities.RequestStatusActive)
	if err != nil {
		log.Printf("[lifecycle][cancel] request update failed request_id=%s err=%v", requestID, err)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
		return RejectResult{}, err
	}
	if req.ID == "" {
		u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
		return RejectResult{}, ErrRequestNotFound
	}

	u.store.ApplyCancellation(requestID, quote.ID)
	u.notifier.Notify(ctx, interfaces.KindCancelled, nc)
	u.store.ScheduleRefresh(requestID, reconcileDelay)

	log.Printf("[lifecycle][cancel] success quote_id=%s request_id=%s", quote.ID, requestID)
	return RejectResult{Quote: updated, Cancelled: true}, nil
}

func (u *RejectQuoteUseCase) rejectPending(ctx context.Context, quote entities.Quote, nc interfaces.NotifyContext) (RejectResult, error) {
	updated, err := u.quoteRepo.UpdateStatus(ctx, quote.ID, entities.QuoteStatusRejected)
	if err != nil {
		log.Printf("[lifecycle][reject] quote update failed quote_id=%s err=%v", quote.ID, err)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
		return RejectResult{}, err
	}
	if updated.ID == "" {
		u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
		return RejectResult{}, ErrQuoteNotFound
	}

	u.store.SetLocalStatus(quote.RequestID, quote.ID, entities.QuoteStatusRejected)
	u.notifier.Notify(ctx, interfaces.KindRejected, nc)
	u.store.ScheduleRefresh(quote.RequestID, reconcileDelay)

	log.Printf("[lifecycle][reject] success quote_id=%s request_id=%s", quote.ID, quote.RequestID)
	return RejectResult{Quote: updated}, nil
}

// restoreSiblings returns every non-accepted sibling to pending. Siblings that
// are already pending need no write; individual failures are logged only.
func (u *RejectQuoteUseCase) restoreSiblings(ctx context.Context, requestID, cancelledQuoteID string) {
	siblings, err := u.quoteRepo.ListByRequestID(ctx, requestID)
	if err != nil {
		log.Printf("[lifecycle][cancel] sibling list failed request_id=%s err=%v", requestID, err)
		return
	}

	var wg sync.WaitGroup
	for _, sib := range siblings {
		if sib.ID == cancelledQuoteID || sib.Status != entities.QuoteStatusRejected {
			continue
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := u.quoteRepo.UpdateStatus(ctx, id, entities.QuoteStatusPending); err != nil {
				log.Printf("[lifecycle][cancel] sibling restore failed quote_id=%s request_id=%s err=%v", id, requestID, err)
			}
		}(sib.ID)
	}
	wg.Wait()
}
