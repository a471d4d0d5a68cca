package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ofair/internal/adapter/http/dto/request"
	response "ofair/internal/adapter/http/dto/response"
	"ofair/internal/adapter/http/middleware"
	"ofair/internal/usecase"
	"ofair/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST_INPUT", "Invalid request payload", http.StatusBadRequest)
)

// RequestHandler handles the service-request CRUD endpoints.

type RequestHandler struct {
	usecase usecase.IRequestUseCase
}

func NewRequestHandler(uc usecase.IRequestUseCase) *RequestHandler {
	return &RequestHandler{usecase: uc}
}

func (h *RequestHandler) Create(c *gin.Context) {
	userID := middleware.UserID(c)

	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	if payload.ResolveTitle() == "" {
		c.JSON(errInvalidRequestPayload.HTTPStatus, errInvalidRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), userID, payload.ResolveTitle(), payload.Description, payload.Location)
	if err != nil {
		log.Printf("[request][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(created))
}

func (h *RequestHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	summaries, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[request][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestSummaries(summaries))
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("request_id")

	summary, err := h.usecase.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequestSummary(summary))
}

func (h *RequestHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("request_id")

	if err := h.usecase.Delete(c.Request.Context(), userID, id); err != nil {
		log.Printf("[request][handler] delete failed request_id=%s err=%v", id, err)
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestInput), errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotDeletable):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_DELETABLE", "Request cannot be deleted while awaiting a rating", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
