package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ofair/internal/adapter/http/dto/request"
	response "ofair/internal/adapter/http/dto/response"
	"ofair/internal/adapter/http/middleware"
	"ofair/internal/domain/entities"
	"ofair/internal/usecase"
	"ofair/internal/usecase/interfaces"
	"ofair/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAcceptPayload = pkg.NewDomainErrorSimple("INVALID_ACCEPT_INPUT", "Invalid accept payload", http.StatusBadRequest)
)

// QuoteHandler exposes the quote listing and lifecycle endpoints.

type QuoteHandler struct {
	store  usecase.IQuoteStore
	accept usecase.IAcceptQuoteUseCase
	reject usecase.IRejectQuoteUseCase
}

func NewQuoteHandler(store usecase.IQuoteStore, accept usecase.IAcceptQuoteUseCase, reject usecase.IRejectQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{store: store, accept: accept, reject: reject}
}

// ListByRequest refreshes and returns the quotes for a service request.
//
// A failed refresh degrades to an empty list instead of an error page; the
// lifecycle endpoints re-read authoritative state on their own, so a stale
// or empty listing is never acted upon.
func (h *QuoteHandler) ListByRequest(c *gin.Context) {
	requestID := c.Param("request_id")

	quotes, err := h.store.Refresh(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[quote][handler] refresh failed request_id=%s err=%v", requestID, err)
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// Accept runs the acceptance protocol for a quote on behalf of the caller.
func (h *QuoteHandler) Accept(c *gin.Context) {
	quoteID := c.Param("quote_id")
	userID := middleware.UserID(c)

	var payload request.AcceptQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAcceptPayload.HTTPStatus, errInvalidAcceptPayload.ToHTTPError())
		return
	}

	method, err := payload.ResolvePaymentMethod()
	if err != nil {
		c.JSON(errInvalidAcceptPayload.HTTPStatus, errInvalidAcceptPayload.ToHTTPError())
		return
	}

	log.Printf("[quote][handler] accept start quote_id=%s user_id=%s method=%s", quoteID, userID, method)

	res, err := h.accept.Accept(c.Request.Context(), userID, quoteID, method)
	if err != nil {
		log.Printf("[quote][handler] accept failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] accept success quote_id=%s already_accepted=%t", quoteID, res.AlreadyAccepted)

	c.JSON(http.StatusOK, response.FromAcceptResult(res))
}

// Reject rejects a pending quote or cancels a previously accepted one.
func (h *QuoteHandler) Reject(c *gin.Context) {
	quoteID := c.Param("quote_id")
	userID := middleware.UserID(c)

	log.Printf("[quote][handler] reject start quote_id=%s user_id=%s", quoteID, userID)

	res, err := h.reject.Reject(c.Request.Context(), userID, quoteID)
	if err != nil {
		log.Printf("[quote][handler] reject failed quote_id=%s err=%v", quoteID, err)
		appErr := mapQuoteLifecycleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] reject success quote_id=%s cancelled=%t", quoteID, res.Cancelled)

	c.JSON(http.StatusOK, response.FromRejectResult(res))
}

func mapQuoteLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, entities.ErrUnknownPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAcceptable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTABLE", "Quote can no longer be accepted", http.StatusConflict)
	case errors.Is(err, interfaces.ErrOperationInFlight):
		return pkg.NewDomainErrorSimple("OPERATION_IN_FLIGHT", "Another operation on this request is in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentRedirectFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_REDIRECT_FAILED", "Quote accepted but payment redirect could not be created", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
