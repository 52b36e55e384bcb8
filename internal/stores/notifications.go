package stores

import (
	"sync"

	"shopfront/internal/mockdata"
	"shopfront/internal/models"
	"shopfront/internal/storage"
)

// NotificationStore holds the active user's notifications. Like orders,
// a user with no persisted notifications gets a generated set on first
// initialization. Notifications are only ever marked read, never
// deleted; persisting them keeps read state across restarts.
type NotificationStore struct {
	store         storage.RecordStore
	currentUserID string
	notifications []models.Notification
	mu            sync.RWMutex
}

// NewNotificationStore creates a new instance of NotificationStore.
func NewNotificationStore(store storage.RecordStore) *NotificationStore {
	return &NotificationStore{
		store: store,
	}
}

// InitializeUserData makes the store serve the given user. Same-id
// calls are no-ops; switches load or generate the new user's set.
func (s *NotificationStore) InitializeUserData(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUserID == userID {
		return
	}

	var notifications []models.Notification
	s.store.Load(storage.KindNotifications, userID, &notifications)
	if len(notifications) == 0 {
		notifications = mockdata.Notifications(userID)
		s.store.Save(storage.KindNotifications, userID, notifications)
	}
	s.notifications = notifications
	s.currentUserID = userID
}

// Add prepends a new notification.
func (s *NotificationStore) Add(notification models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append([]models.Notification{notification}, s.notifications...)
	s.persist()
}

// MarkAsRead marks a single notification read. Unknown ids are no-ops.
func (s *NotificationStore) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			if !s.notifications[i].Read {
				s.notifications[i].Read = true
				s.persist()
			}
			return
		}
	}
}

// MarkAllAsRead marks every notification read.
func (s *NotificationStore) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.notifications {
		if !s.notifications[i].Read {
			s.notifications[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persist()
	}
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

// Notifications returns a copy of the current notification list.
func (s *NotificationStore) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]models.Notification, len(s.notifications))
	copy(notifications, s.notifications)
	return notifications
}

// persist must be called with the write lock held.
func (s *NotificationStore) persist() {
	if s.currentUserID == "" {
		return
	}
	s.store.Save(storage.KindNotifications, s.currentUserID, s.notifications)
}
