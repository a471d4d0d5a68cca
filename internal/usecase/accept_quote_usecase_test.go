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

type acceptFixture struct {
	store        *QuoteStore
	quoteRepo    *mock_interfaces.MockIQuoteRepository
	requestRepo  *mock_interfaces.MockIRequestRepository
	acceptedRepo *mock_interfaces.MockIAcceptedQuoteRepository
	referralRepo *mock_interfaces.MockIReferralRepository
	gateway      *mock_interfaces.MockIPaymentGateway
	guard        *mock_interfaces.MockIOperationGuard
	notifier     *mock_interfaces.MockILifecycleNotifier
	uc           *AcceptQuoteUseCase
}

func newAcceptFixture(ctrl *gomock.Controller) *acceptFixture {
	f := &acceptFixture{
		quoteRepo:    mock_interfaces.NewMockIQuoteRepository(ctrl),
		requestRepo:  mock_interfaces.NewMockIRequestRepository(ctrl),
		acceptedRepo: mock_interfaces.NewMockIAcceptedQuoteRepository(ctrl),
		referralRepo: mock_interfaces.NewMockIReferralRepository(ctrl),
		gateway:      mock_interfaces.NewMockIPaymentGateway(ctrl),
		guard:        mock_interfaces.NewMockIOperationGuard(ctrl),
		notifier:     mock_interfaces.NewMockILifecycleNotifier(ctrl),
	}
	f.store = NewQuoteStore(f.quoteRepo, f.acceptedRepo, nil)
	f.store.afterFunc = func(time.Duration, func()) *time.Timer { return nil }
	f.uc = NewAcceptQuoteUseCase(f.store, f.quoteRepo, f.requestRepo, f.acceptedRepo, f.referralRepo, f.gateway, f.guard, f.notifier)
	return f
}

func pendingQuote(id, requestID string) entities.Quote {
	return entities.Quote{
		ID:               id,
		RequestID:        requestID,
		ProfessionalID:   "pro-1",
		ProfessionalName: "Avi",
		Phone:            "050-1234567",
		Profession:       "plumber",
		Price:            350,
		Description:      "Replace the trap",
		Status:           entities.QuoteStatusPending,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestAcceptQuoteUseCase_Accept(t *testing.T) {
	ctx := context.Background()

	t.Run("cash acceptance runs the full protocol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")
		sibA := pendingQuote("q-2", "req-1")
		sibB := pendingQuote("q-3", "req-1")

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.guard.EXPECT().Acquire(gomock.Any(), "req-1").Return("tok-1", nil)
		f.acceptedRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.AcceptedQuoteRecord{}, nil)

		accepted := target
		accepted.Status = entities.QuoteStatusAccepted
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAccepted).Return(accepted, nil)

		f.quoteRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quote{target, sibA, sibB}, nil)
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-2", entities.QuoteStatusRejected).Return(sibA, nil)
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-3", entities.QuoteStatusRejected).Return(sibB, nil)

		f.requestRepo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusWaitingForRating).
			Return(entities.Request{ID: "req-1", Status: entities.RequestStatusWaitingForRating}, nil)

		f.acceptedRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.AcceptedQuoteRecord) (entities.AcceptedQuoteRecord, error) {
				if rec.QuoteID != "q-1" || rec.RequestID != "req-1" || rec.UserID != "user-1" {
					t.Fatalf("unexpected accepted record: %+v", rec)
				}
				if rec.PaymentMethod != entities.PaymentMethodCash {
					t.Fatalf("expected cash, got %s", rec.PaymentMethod)
				}
				if rec.Status != entities.AcceptedQuoteStatusWaitingForRating {
					t.Fatalf("unexpected record status: %s", rec.Status)
				}
				return rec, nil
			})
		f.referralRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Referral{}, nil)

		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAccepted, gomock.Any())
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAcceptedWithRatingPrompt, gomock.Any())
		f.guard.EXPECT().Release(gomock.Any(), "req-1", "tok-1").Return(nil)

		res, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCash)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AlreadyAccepted {
			t.Fatal("expected fresh acceptance")
		}
		if res.RedirectURL != "" {
			t.Fatalf("cash must not produce a redirect, got %s", res.RedirectURL)
		}
		if res.Quote.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted quote, got %s", res.Quote.Status)
		}
	})

	t.Run("credit acceptance returns the checkout redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.guard.EXPECT().Acquire(gomock.Any(), "req-1").Return("tok-1", nil)
		f.acceptedRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.AcceptedQuoteRecord{}, nil)

		accepted := target
		accepted.Status = entities.QuoteStatusAccepted
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAccepted).Return(accepted, nil)
		f.quoteRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quote{target}, nil)
		f.requestRepo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusWaitingForRating).
			Return(entities.Request{ID: "req-1"}, nil)
		f.acceptedRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.AcceptedQuoteRecord) (entities.AcceptedQuoteRecord, error) {
				return rec, nil
			})
		f.referralRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Referral{}, nil)

		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAccepted, gomock.Any())
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAcceptedWithRatingPrompt, gomock.Any())

		f.gateway.EXPECT().CreateCheckout(gomock.Any(), "q-1", "Replace the trap", 350.0).
			Return("https://payment.local/checkout?quote=q-1", nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindPaymentRedirect, gomock.Any())
		f.guard.EXPECT().Release(gomock.Any(), "req-1", "tok-1").Return(nil)

		res, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCredit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.RedirectURL != "https://payment.local/checkout?quote=q-1" {
			t.Fatalf("unexpected redirect: %s", res.RedirectURL)
		}
	})

	t.Run("already accepted is an idempotent success without redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.guard.EXPECT().Acquire(gomock.Any(), "req-1").Return("tok-1", nil)
		f.acceptedRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").
			Return(entities.AcceptedQuoteRecord{QuoteID: "q-1", RequestID: "req-1"}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAlreadyAccepted, gomock.Any())
		f.guard.EXPECT().Release(gomock.Any(), "req-1", "tok-1").Return(nil)

		res, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCredit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.AlreadyAccepted {
			t.Fatal("expected AlreadyAccepted")
		}
		if res.RedirectURL != "" {
			t.Fatalf("fast path must not create a checkout, got %s", res.RedirectURL)
		}
		if res.Quote.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected accepted status, got %s", res.Quote.Status)
		}
	})

	t.Run("quote not found emits one error notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindGeneralError, gomock.Any())

		_, err := f.uc.Accept(ctx, "user-1", "q-404", entities.PaymentMethodCash)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("rejected quote cannot be accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		rejected := pendingQuote("q-1", "req-1")
		rejected.Status = entities.QuoteStatusRejected

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(rejected, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindGeneralError, gomock.Any())

		_, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCash)
		if !errors.Is(err, ErrQuoteNotAcceptable) {
			t.Fatalf("expected ErrQuoteNotAcceptable, got %v", err)
		}
	})

	t.Run("caller who does not own the request gets not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.Request{ID: "req-1", UserID: "alice"}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindGeneralError, gomock.Any())

		// No guard acquisition and no writes: the quote, request, accepted
		// record and referral mocks expect nothing past the owner check.
		_, err := f.uc.Accept(ctx, "mallory", "q-1", entities.PaymentMethodCash)
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("in-flight guard rejects without notifying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")
		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.guard.EXPECT().Acquire(gomock.Any(), "req-1").Return("", interfaces.ErrOperationInFlight)

		_, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCash)
		if !errors.Is(err, interfaces.ErrOperationInFlight) {
			t.Fatalf("expected ErrOperationInFlight, got %v", err)
		}
	})

	t.Run("single quote means no sibling writes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.guard.EXPECT().Acquire(gomock.Any(), "req-1").Return("tok-1", nil)
		f.acceptedRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.AcceptedQuoteRecord{}, nil)

		accepted := target
		accepted.Status = entities.QuoteStatusAccepted
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAccepted).Return(accepted, nil)
		// Only the target comes back; UpdateStatus must not run for anything else.
		f.quoteRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quote{accepted}, nil)
		f.requestRepo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusWaitingForRating).
			Return(entities.Request{ID: "req-1"}, nil)
		f.acceptedRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.AcceptedQuoteRecord) (entities.AcceptedQuoteRecord, error) {
				return rec, nil
			})
		f.referralRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Referral{}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAccepted, gomock.Any())
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAcceptedWithRatingPrompt, gomock.Any())
		f.guard.EXPECT().Release(gomock.Any(), "req-1", "tok-1").Return(nil)

		if _, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCash); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sibling rejection failure does not fail the acceptance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")
		sibA := pendingQuote("q-2", "req-1")

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.guard.EXPECT().Acquire(gomock.Any(), "req-1").Return("tok-1", nil)
		f.acceptedRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.AcceptedQuoteRecord{}, nil)

		accepted := target
		accepted.Status = entities.QuoteStatusAccepted
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAccepted).Return(accepted, nil)
		f.quoteRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quote{target, sibA}, nil)
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-2", entities.QuoteStatusRejected).
			Return(entities.Quote{}, errors.New("dynamo throttled"))
		f.requestRepo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusWaitingForRating).
			Return(entities.Request{ID: "req-1"}, nil)
		f.acceptedRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.AcceptedQuoteRecord) (entities.AcceptedQuoteRecord, error) {
				return rec, nil
			})
		f.referralRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Referral{}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAccepted, gomock.Any())
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAcceptedWithRatingPrompt, gomock.Any())
		f.guard.EXPECT().Release(gomock.Any(), "req-1", "tok-1").Return(nil)

		if _, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCash); err != nil {
			t.Fatalf("acceptance must survive sibling failure, got %v", err)
		}
	})

	t.Run("checkout failure keeps the accepted state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		target := pendingQuote("q-1", "req-1")

		f.quoteRepo.EXPECT().GetByID(gomock.Any(), "q-1").Return(target, nil)
		f.requestRepo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.Request{ID: "req-1", UserID: "user-1"}, nil)
		f.guard.EXPECT().Acquire(gomock.Any(), "req-1").Return("tok-1", nil)
		f.acceptedRepo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.AcceptedQuoteRecord{}, nil)

		accepted := target
		accepted.Status = entities.QuoteStatusAccepted
		f.quoteRepo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusAccepted).Return(accepted, nil)
		f.quoteRepo.EXPECT().ListByRequestID(gomock.Any(), "req-1").Return([]entities.Quote{target}, nil)
		f.requestRepo.EXPECT().UpdateStatus(gomock.Any(), "req-1", entities.RequestStatusWaitingForRating).
			Return(entities.Request{ID: "req-1"}, nil)
		f.acceptedRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec entities.AcceptedQuoteRecord) (entities.AcceptedQuoteRecord, error) {
				return rec, nil
			})
		f.referralRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Referral{}, nil)
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAccepted, gomock.Any())
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindAcceptedWithRatingPrompt, gomock.Any())
		f.gateway.EXPECT().CreateCheckout(gomock.Any(), "q-1", gomock.Any(), 350.0).
			Return("", errors.New("mp unavailable"))
		f.notifier.EXPECT().Notify(gomock.Any(), interfaces.KindGeneralError, gomock.Any())
		f.guard.EXPECT().Release(gomock.Any(), "req-1", "tok-1").Return(nil)

		res, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethodCredit)
		if !errors.Is(err, ErrPaymentRedirectFailed) {
			t.Fatalf("expected ErrPaymentRedirectFailed, got %v", err)
		}
		if res.Quote.Status != entities.QuoteStatusAccepted {
			t.Fatal("accepted state must survive a failed redirect")
		}
	})

	t.Run("blank id and unknown method are rejected up front", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newAcceptFixture(ctrl)

		if _, err := f.uc.Accept(ctx, "user-1", "   ", entities.PaymentMethodCash); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if _, err := f.uc.Accept(ctx, "user-1", "q-1", entities.PaymentMethod("barter")); !errors.Is(err, entities.ErrUnknownPaymentMethod) {
			t.Fatalf("expected ErrUnknownPaymentMethod, got %v", err)
		}
	})
}
