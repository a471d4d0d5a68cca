package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ofair/internal/adapter/http/handlers/mocks"
	"ofair/internal/domain/entities"
	"ofair/internal/usecase"
	"ofair/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/requests/:request_id/quotes", h.ListByRequest)
	r.POST("/v1/quotes/:quote_id/accept", h.Accept)
	r.POST("/v1/quotes/:quote_id/reject", h.Reject)
	return r
}

func TestQuoteHandler_ListByRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIQuoteStore(ctrl)
		h := NewQuoteHandler(store, nil, nil)

		quotes := []entities.Quote{
			{ID: "q-1", RequestID: "req-1", ProfessionalName: "Avi", Price: 350, Status: entities.QuoteStatusPending, CreatedAt: time.Now().UTC()},
		}
		store.EXPECT().Refresh(gomock.Any(), "req-1").Return(quotes, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1/quotes", nil)
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "q-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("refresh failure degrades to empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIQuoteStore(ctrl)
		h := NewQuoteHandler(store, nil, nil)

		store.EXPECT().Refresh(gomock.Any(), "req-1").Return([]entities.Quote{}, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1/quotes", nil)
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Body.String(); got != "[]" {
			t.Fatalf("expected empty list, got %s", got)
		}
	})

	t.Run("invalid request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mocks.NewMockIQuoteStore(ctrl)
		h := NewQuoteHandler(store, nil, nil)

		store.EXPECT().Refresh(gomock.Any(), "   ").Return(nil, usecase.ErrInvalidRequest)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/%20%20%20/quotes", nil)
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown payment method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{"payment_method":"barter"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		accept.EXPECT().Accept(gomock.Any(), "", "q-404", entities.PaymentMethodCash).Return(usecase.AcceptResult{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-404/accept", bytes.NewBufferString(`{"payment_method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("foreign request maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		accept.EXPECT().Accept(gomock.Any(), "", "q-1", entities.PaymentMethodCash).Return(usecase.AcceptResult{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{"payment_method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("operation in flight maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		accept.EXPECT().Accept(gomock.Any(), "", "q-1", entities.PaymentMethodCash).Return(usecase.AcceptResult{}, interfaces.ErrOperationInFlight)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{"payment_method":"cash"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("payment redirect failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		accept.EXPECT().Accept(gomock.Any(), "", "q-1", entities.PaymentMethodCredit).Return(usecase.AcceptResult{}, usecase.ErrPaymentRedirectFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{"payment_method":"credit"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("credit success returns redirect url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		res := usecase.AcceptResult{
			Quote:       entities.Quote{ID: "q-1", RequestID: "req-1", Status: entities.QuoteStatusAccepted},
			RedirectURL: "https://payment.local/checkout?quote=q-1",
		}
		accept.EXPECT().Accept(gomock.Any(), "", "q-1", entities.PaymentMethodCredit).Return(res, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{"payment_method":"credit"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["redirect_url"] != "https://payment.local/checkout?quote=q-1" {
			t.Fatalf("unexpected redirect_url: %v", body["redirect_url"])
		}
	})

	t.Run("already accepted returns flag without redirect", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		accept := mocks.NewMockIAcceptQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, accept, nil)

		res := usecase.AcceptResult{
			Quote:           entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted},
			AlreadyAccepted: true,
		}
		accept.EXPECT().Accept(gomock.Any(), "", "q-1", entities.PaymentMethodCredit).Return(res, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/accept", bytes.NewBufferString(`{"payment_method":"credit"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["already_accepted"] != true {
			t.Fatalf("expected already_accepted=true, got %v", body["already_accepted"])
		}
		if _, ok := body["redirect_url"]; ok {
			t.Fatalf("expected no redirect_url, got %v", body["redirect_url"])
		}
	})
}

func TestQuoteHandler_Reject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reject := mocks.NewMockIRejectQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, nil, reject)

		res := usecase.RejectResult{Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusRejected}}
		reject.EXPECT().Reject(gomock.Any(), "", "q-1").Return(res, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", nil)
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cancellation flagged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reject := mocks.NewMockIRejectQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, nil, reject)

		res := usecase.RejectResult{Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusRejected}, Cancelled: true}
		reject.EXPECT().Reject(gomock.Any(), "", "q-1").Return(res, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/reject", nil)
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["cancelled"] != true {
			t.Fatalf("expected cancelled=true, got %v", body["cancelled"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reject := mocks.NewMockIRejectQuoteUseCase(ctrl)
		h := NewQuoteHandler(nil, nil, reject)

		reject.EXPECT().Reject(gomock.Any(), "", "q-404").Return(usecase.RejectResult{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-404/reject", nil)
		w := httptest.NewRecorder()
		newQuoteRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
