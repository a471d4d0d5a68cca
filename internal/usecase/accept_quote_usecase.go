package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"ofair/internal/domain/entities"
	"ofair/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotAcceptable    = errors.New("quote is not acceptable in its current status")
	ErrPaymentRedirectFailed = errors.New("payment redirect could not be created")
)

// AcceptResult is the terminal state reported back to the caller.
//
// AlreadyAccepted marks the idempotent fast path: the request already had an
// accepted quote, nothing was re-written and no payment redirect is issued.

type AcceptResult struct {
	Quote           entities.Quote
	AlreadyAccepted bool
	RedirectURL     string
}

// IAcceptQuoteUseCase encapsulates the "accept a quote" protocol.

type IAcceptQuoteUseCase interface {
	Accept(ctx context.Context, userID, quoteID string, method entities.PaymentMethod) (AcceptResult, error)
}

// AcceptQuoteUseCase enacts acceptance atomically from the caller's
// perspective even though the backing store has no cross-row transactions:
//
//  1. re-check the accepted-quote record (double-accept guard; hit => fast path)
//  2. mark the target quote accepted
//  3. mark the siblings rejected (parallel, partial failure logged only)
//  4. move the request to waiting_for_rating
//  5. upsert the accepted-quote record
//  6. emit accepted + rating-prompt notifications (the delayed follow-up
//     reminder is owned by RatingReminderJob)
//  7. for credit, create the hosted checkout and return its redirect URL
//
// There is no automatic rollback of completed steps; reconciliation happens
// on the next store refresh.

type AcceptQuoteUseCase struct {
	store        *QuoteStore
	quoteRepo    interfaces.IQuoteRepository
	requestRepo  interfaces.IRequestRepository
	acceptedRepo interfaces.IAcceptedQuoteRepository
	referralRepo interfaces.IReferralRepository
	gateway      interfaces.IPaymentGateway
	guard        interfaces.IOperationGuard
	notifier     interfaces.ILifecycleNotifier
}

var _ IAcceptQuoteUseCase = (*AcceptQuoteUseCase)(nil)

func NewAcceptQuoteUseCase(
	store *QuoteStore,
	quoteRepo interfaces.IQuoteRepository,
	requestRepo interfaces.IRequestRepository,
	acceptedRepo interfaces.IAcceptedQuoteRepository,
	referralRepo interfaces.IReferralRepository,
	gateway interfaces.IPaymentGateway,
	guard interfaces.IOperationGuard,
	notifier interfaces.ILifecycleNotifier,
) *AcceptQuoteUseCase {
	return &AcceptQuoteUseCase{
		store:        store,
		quoteRepo:    quoteRepo,
		requestRepo:  requestRepo,
		acceptedRepo: acceptedRepo,
		referralRepo: referralRepo,
		gateway:      gateway,
		guard:        guard,
		notifier:     notifier,
	}
}

func (u *AcceptQuoteUseCase) Accept(ctx context.Context, userID, quoteID string, method entities.PaymentMethod) (AcceptResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return AcceptResult{}, ErrInvalidQuoteID
	}
	if method != entities.PaymentMethodCash && method != entities.PaymentMethodCredit {
		return AcceptResult{}, entities.ErrUnknownPaymentMethod
	}
	log.Printf("[lifecycle][accept] start quote_id=%s method=%s", quoteID, method)

	quote, err := u.store.Lookup(ctx, quoteID)
	if err != nil {
		if errors.Is(err, ErrQuoteNotFound) {
			log.Printf("[lifecycle][accept] quote not found quote_id=%s", quoteID)
			u.notifier.Notify(ctx, interfaces.KindGeneralError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID})
			return AcceptResult{}, err
		}
		u.notifier.Notify(ctx, interfaces.KindAcceptError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID})
		return AcceptResult{}, err
	}

	// Acceptance is owner-scoped: only the user who opened the request may
	// accept one of its quotes. Foreign callers see a not-found, same as the
	// request endpoints.
	owner, err := u.requestRepo.GetByID(ctx, quote.RequestID)
	if err != nil {
		log.Printf("[lifecycle][accept] request lookup failed request_id=%s err=%v", quote.RequestID, err)
		u.notifier.Notify(ctx, interfaces.KindAcceptError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID})
		return AcceptResult{}, err
	}
	if owner.ID == "" || owner.UserID != userID {
		log.Printf("[lifecycle][accept] request not owned by caller request_id=%s", quote.RequestID)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID})
		return AcceptResult{}, ErrRequestNotFound
	}

	if quote.Status == entities.QuoteStatusRejected {
		log.Printf("[lifecycle][accept] quote already rejected quote_id=%s", quoteID)
		u.notifier.Notify(ctx, interfaces.KindGeneralError, interfaces.NotifyContext{UserID: userID, QuoteID: quoteID, RequestID: quote.RequestID})
		return AcceptResult{}, ErrQuoteNotAcceptable
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
		// In-flight rejection is the caller-contract path, not a failure of
		// the protocol itself; no notification is emitted for it.
		return AcceptResult{}, err
	}
	defer func() {
		if err := u.guard.Release(ctx, requestID, token); err != nil {
			log.Printf("[lifecycle][accept] guard release failed request_id=%s err=%v", requestID, err)
		}
	}()

	// Step 1: double-accept re-check against the side record. Finding one is
	// the idempotent success path, not an error.
	existing, err := u.acceptedRepo.GetByRequestID(ctx, requestID)
	if err != nil {
		log.Printf("[lifecycle][accept] accepted-record check failed request_id=%s err=%v", requestID, err)
		u.notifier.Notify(ctx, interfaces.KindAcceptError, nc)
		return AcceptResult{}, err
	}
	if existing.QuoteID != "" {
		log.Printf("[lifecycle][accept] already accepted request_id=%s accepted_quote_id=%s", requestID, existing.QuoteID)
		u.store.SetLocalStatus(requestID, quoteID, entities.QuoteStatusAccepted)
		u.notifier.Notify(ctx, interfaces.KindAlreadyAccepted, nc)
		quote.Status = entities.QuoteStatusAccepted
		return AcceptResult{Quote: quote, AlreadyAccepted: true}, nil
	}

	// Step 2: mark the target accepted.
	updated, err := u.quoteRepo.UpdateStatus(ctx, quoteID, entities.QuoteStatusAccepted)
	if err != nil {
		log.Printf("[lifecycle][accept] quote update failed quote_id=%s err=%v", quoteID, err)
		u.notifier.Notify(ctx, interfaces.KindAcceptError, nc)
		return AcceptResult{}, err
	}
	if updated.ID == "" {
		log.Printf("[lifecycle][accept] quote row vanished quote_id=%s", quoteID)
		u.notifier.Notify(ctx, interfaces.KindAcceptError, nc)
		return AcceptResult{}, ErrQuoteNotFound
	}

	// Step 3: reject the siblings. Partial failure here never rolls back the
	// acceptance; a later refresh reconciles stragglers.
	u.rejectSiblings(ctx, requestID, quoteID)

	// Step 4: move the request along.
	req, err := u.requestRepo.UpdateStatus(ctx, requestID, entities.RequestStatusWaitingForRating)
	if err != nil {
		log.Printf("[lifecycle][accept] request update failed request_id=%s err=%v", requestID, err)
		u.notifier.Notify(ctx, interfaces.KindAcceptError, nc)
		return AcceptResult{}, err
	}
	if req.ID == "" {
		log.Printf("[lifecycle][accept] request not found request_id=%s", requestID)
		u.notifier.Notify(ctx, interfaces.KindAcceptError, nc)
		return AcceptResult{}, ErrRequestNotFound
	}

	// Step 5: persist the acceptance record (upsert on quote_id conflict).
	now := time.Now().UTC()
	rec := entities.AcceptedQuoteRecord{
		QuoteID:          quoteID,
		RequestID:        requestID,
		UserID:           userID,
		ProfessionalID:   quote.ProfessionalID,
		ProfessionalName: quote.ProfessionalName,
		Price:            quote.Price,
		PaymentMethod:    method,
		Status:           entities.AcceptedQuoteStatusWaitingForRating,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if _, err := u.acceptedRepo.Save(ctx, rec); err != nil {
		log.Printf("[lifecycle][accept] accepted-record save failed quote_id=%s err=%v", quoteID, err)
		u.notifier.Notify(ctx, interfaces.KindAcceptError, nc)
		return AcceptResult{}, err
	}

	// Acceptance reveals the professional's contact; the referral record is a
	// side effect and never fails the acceptance.
	if _, err := u.referralRepo.Save(ctx, entities.Referral{
		ID:               uuid.NewString(),
		UserID:           userID,
		ProfessionalID:   quote.ProfessionalID,
		ProfessionalName: quote.ProfessionalName,
		Phone:            quote.Phone,
		Profession:       quote.Profession,
		CreatedAt:        now,
	}); err != nil {
		log.Printf("[lifecycle][accept] referral save failed quote_id=%s err=%v", quoteID, err)
	}

	u.store.ApplyAcceptance(requestID, quoteID)

	// Step 6: domain notifications. The delayed follow-up reminder is emitted
	// later by the cron job once the acceptance has sat unrated long enough.
	u.notifier.Notify(ctx, interfaces.KindAccepted, nc)
	u.notifier.Notify(ctx, interfaces.KindAcceptedWithRatingPrompt, nc)

	result := AcceptResult{Quote: updated}

	// Step 7: credit hands off to the hosted checkout. The accepted state is
	// already persisted, so a failed or abandoned redirect is recoverable.
	if method == entities.PaymentMethodCredit {
		url, err := u.gateway.CreateCheckout(ctx, quoteID, quote.Description, quote.Price)
		if err != nil {
			log.Printf("[lifecycle][accept] checkout create failed quote_id=%s err=%v", quoteID, err)
			u.notifier.Notify(ctx, interfaces.KindGeneralError, nc)
			u.store.ScheduleRefresh(requestID, reconcileDelay)
			return result, ErrPaymentRedirectFailed
		}
		u.notifier.Notify(ctx, interfaces.KindPaymentRedirect, nc)
		result.RedirectURL = url
	}

	u.store.ScheduleRefresh(requestID, reconcileDelay)
	log.Printf("[lifecycle][accept] success quote_id=%s request_id=%s method=%s", quoteID, requestID, method)
	return result, nil
}

// rejectSiblings flips every other quote of the request to rejected. Updates
// run in parallel and individual failures are logged, not propagated.
func (u *AcceptQuoteUseCase) rejectSiblings(ctx context.Context, requestID, acceptedQuoteID string) {
	siblings, err := u.quoteRepo.ListByRequestID(ctx, requestID)
	if err != nil {
		log.Printf("[lifecycle][accept] sibling list failed request_id=%s err=%v", requestID, err)
		return
	}

	var wg sync.WaitGroup
	for _, sib := range siblings {
		if sib.ID == acceptedQuoteID || sib.Status == entities.QuoteStatusRejected {
			continue
		}
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := u.quoteRepo.UpdateStatus(ctx, id, entities.QuoteStatusRejected); err != nil {
				log.Printf("[lifecycle][accept] sibling reject failed quote_id=%s request_id=%s err=%v", id, requestID, err)
			}
		}(sib.ID)
	}
	wg.Wait()
}
