package handlers

import (
	"errors"
	"log"
	"net/http"

	response "ofair/internal/adapter/http/dto/response"
	"ofair/internal/adapter/http/middleware"
	"ofair/internal/usecase"
	"ofair/pkg"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the per-user notification inbox.

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)

	notifications, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[notification][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotifications(notifications))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("notification_id")

	updated, err := h.usecase.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromNotification(updated))
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	userID := middleware.UserID(c)
	id := c.Param("notification_id")

	if err := h.usecase.Delete(c.Request.Context(), userID, id); err != nil {
		appErr := mapNotificationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapNotificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidNotificationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
