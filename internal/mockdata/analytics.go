package mockdata

import (
	"time"

	"shopfront/internal/identity"
	"shopfront/internal/models"
	"shopfront/internal/seeded"
)

const analyticsStride = 23

// Seasonal boosts applied to the two most recent months so the chart
// shows a believable holiday spike.
const (
	latestMonthBoost   = 1.8
	previousMonthBoost = 1.5
)

// SpendingAnalytics deterministically synthesizes exactly 12 monthly
// spending points for the rolling year ending at the current month.
// Points are recomputed per call, never persisted.
func SpendingAnalytics(userID string) []models.SpendingPoint {
	seed := identity.SeedFor(userID) + 7000
	now := time.Now()
	// Anchor to the first of the month so month arithmetic never
	// normalizes across a short month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	points := make([]models.SpendingPoint, 0, 12)
	for i := 0; i < 12; i++ {
		month := anchor.AddDate(0, -(11 - i), 0)
		amount := seeded.Between(seed+int64(i)*analyticsStride, 120, 950)

		switch i {
		case 11:
			amount *= latestMonthBoost
		case 10:
			amount *= previousMonthBoost
		}

		points = append(points, models.SpendingPoint{
			Month:  month.Format("Jan"),
			Amount: round2(amount),
		})
	}
	return points
}
