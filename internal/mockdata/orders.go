// Package mockdata synthesizes a believable per-user demo history:
// orders, addresses, payment methods, notifications, and spending
// analytics. Every generator is a pure function of its inputs: the
// same user id always yields the same output, at any time, from any
// process. Randomness is addressed purely by seed arithmetic (see
// internal/seeded).
package mockdata

import (
	"fmt"
	"math"
	"sort"
	"time"

	"shopfront/internal/identity"
	"shopfront/internal/models"
	"shopfront/internal/seeded"
)

// Seed offsets used to derive independent draws per order and per item.
const (
	orderStride = 137
	itemStride  = 17
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Orders deterministically synthesizes a user's order history: 10-25
// orders, each with 1-3 catalog items, aged up to ~6 months, sorted
// newest first.
func Orders(userID string) []models.Order {
	seed := identity.SeedFor(userID)
	count := seeded.IntBetween(seed, 10, 25)
	now := time.Now()

	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		os := seed + int64(i)*orderStride

		itemCount := seeded.IntBetween(os+1, 1, 3)
		items := make([]models.OrderItem, 0, itemCount)
		var total float64
		for j := 0; j < itemCount; j++ {
			is := os + int64(j+1)*itemStride
			entry := catalogPool[seeded.Index(is, len(catalogPool))]
			price := round2(seeded.Between(is+2, 9.99, 209.99))
			quantity := seeded.IntBetween(is+3, 1, 3)

			items = append(items, models.OrderItem{
				ID:       fmt.Sprintf("item-%d-%d", os, j),
				Name:     entry.Name,
				Price:    price,
				Quantity: quantity,
				Image:    entry.Image,
			})
			total += price * float64(quantity)
		}

		daysAgo := seeded.IntBetween(os+4, 0, 179)
		status := orderStatusPool[seeded.Index(os+5, len(orderStatusPool))]
		addr := addressPool[seeded.Index(os+6, len(addressPool))]

		orders = append(orders, models.Order{
			ID:          fmt.Sprintf("order-%d-%d", seed, i),
			OrderNumber: fmt.Sprintf("NX%08d", seed+int64(i)),
			Date:        now.AddDate(0, 0, -daysAgo),
			Total:       round2(total),
			Status:      models.OrderStatus(status),
			Items:       items,
			ShippingAddress: fmt.Sprintf("%s, %s, %s %s",
				addr.Street, addr.City, addr.State, addr.ZipCode),
		})
	}

	sort.SliceStable(orders, func(a, b int) bool {
		return orders[a].Date.After(orders[b].Date)
	})
	return orders
}
