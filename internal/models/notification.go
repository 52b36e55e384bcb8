package models

import "time"

// NotificationType is the canonical notification category.
// Shipping and delivery updates are "order" notifications; their
// flavor lives in the title/message text.
type NotificationType string

const (
	NotificationTypeOrder NotificationType = "order"
	NotificationTypePromo NotificationType = "promo"
	NotificationTypeSystem NotificationType = "system"
)

// Notification is an in-app notification. Notifications are only ever
// marked read; they are never deleted within a session.
type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Date    time.Time        `json:"date"`
	Read    bool             `json:"read"`
}
