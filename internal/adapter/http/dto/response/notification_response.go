package response

import (
	"time"

	"ofair/internal/domain/entities"
)

type NotificationResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ActionURL   string    `json:"action_url,omitempty"`
	ActionLabel string    `json:"action_label,omitempty"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		ActionURL:   n.ActionURL,
		ActionLabel: n.ActionLabel,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}
