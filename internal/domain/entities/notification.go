package entities

import (
	"strings"
	"time"
)

// NotificationType is a closed set. Values arriving from the external store
// that do not match any member deserialize as "system" rather than leaking an
// open string union into the rest of the code.

type NotificationType string

const (
	NotificationTypeQuote        NotificationType = "quote"
	NotificationTypeMessage      NotificationType = "message"
	NotificationTypeSystem       NotificationType = "system"
	NotificationTypeReminder     NotificationType = "reminder"
	NotificationTypeProfessional NotificationType = "professional"
)

func ParseNotificationType(s string) NotificationType {
	switch t := NotificationType(strings.ToLower(strings.TrimSpace(s))); t {
	case NotificationTypeQuote, NotificationTypeMessage, NotificationTypeSystem,
		NotificationTypeReminder, NotificationTypeProfessional:
		return t
	}
	return NotificationTypeSystem
}

// Notification is a user-facing event record created as a side effect of
// lifecycle transitions. The lifecycle code never mutates one after creation;
// only the recipient marks it read or deletes it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type Notification struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	ActionURL   string           `json:"action_url,omitempty"`
	ActionLabel string           `json:"action_label,omitempty"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
