package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ofair/internal/adapter/http/handlers/mocks"
	"ofair/internal/domain/entities"
	"ofair/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newNotificationRouter(h *NotificationHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/notifications", h.List)
	r.PATCH("/v1/notifications/:notification_id/read", h.MarkRead)
	r.DELETE("/v1/notifications/:notification_id", h.Delete)
	return r
}

func TestNotificationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		ns := []entities.Notification{
			{ID: "n-1", Type: entities.NotificationTypeQuote, Title: "Quote accepted", CreatedAt: time.Now().UTC()},
		}
		uc.EXPECT().ListByUser(gomock.Any(), "").Return(ns, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/notifications", nil)
		w := httptest.NewRecorder()
		newNotificationRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 1 || body[0]["type"] != "quote" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		updated := entities.Notification{ID: "n-1", IsRead: true}
		uc.EXPECT().MarkRead(gomock.Any(), "", "n-1").Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-1/read", nil)
		w := httptest.NewRecorder()
		newNotificationRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["is_read"] != true {
			t.Fatalf("expected is_read=true, got %v", body["is_read"])
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().MarkRead(gomock.Any(), "", "n-404").Return(entities.Notification{}, usecase.ErrNotificationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/notifications/n-404/read", nil)
		w := httptest.NewRecorder()
		newNotificationRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestNotificationHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockINotificationUseCase(ctrl)
		h := NewNotificationHandler(uc)

		uc.EXPECT().Delete(gomock.Any(), "", "n-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/notifications/n-1", nil)
		w := httptest.NewRecorder()
		newNotificationRouter(h).ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
