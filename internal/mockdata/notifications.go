package mockdata

import (
	"fmt"
	"sort"
	"time"

	"shopfront/internal/identity"
	"shopfront/internal/models"
	"shopfront/internal/seeded"
)

const notificationStride = 41

var notificationCategories = []models.NotificationType{
	models.NotificationTypeOrder,
	models.NotificationTypePromo,
	models.NotificationTypeSystem,
}

// Notifications deterministically synthesizes 3-10 notifications across
// the three categories, aged up to a week, roughly 70% already read,
// sorted most recent first.
func Notifications(userID string) []models.Notification {
	seed := identity.SeedFor(userID) + 3000
	count := seeded.IntBetween(seed, 3, 10)
	now := time.Now()

	notifications := make([]models.Notification, 0, count)
	for i := 0; i < count; i++ {
		ns := seed + int64(i)*notificationStride
		category := notificationCategories[seeded.Index(ns+1, len(notificationCategories))]

		var pool []notificationTemplate
		switch category {
		case models.NotificationTypeOrder:
			pool = orderNotifications
		case models.NotificationTypePromo:
			pool = promoNotifications
		default:
			pool = systemNotifications
		}
		template := pool[seeded.Index(ns+2, len(pool))]

		hoursAgo := seeded.IntBetween(ns+3, 0, 167)
		notifications = append(notifications, models.Notification{
			ID:      fmt.Sprintf("notif-%d-%d", seed, i),
			Type:    category,
			Title:   template.Title,
			Message: template.Message,
			Date:    now.Add(-time.Duration(hoursAgo) * time.Hour),
			Read:    seeded.Chance(ns+4, 0.7),
		})
	}

	sort.SliceStable(notifications, func(a, b int) bool {
		return notifications[a].Date.After(notifications[b].Date)
	})
	return notifications
}
