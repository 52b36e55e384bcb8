// Package reviews synthesizes product reviews on demand. The star
// distribution is a function of the product's nominal rating (higher
// rated products skew toward 5 and 4 stars), so generated review sets
// stay consistent with the displayed average instead of looking
// uniformly random. Output is a pure function of (product, count).
package reviews

import (
	"fmt"
	"sort"
	"time"

	"shopfront/internal/identity"
	"shopfront/internal/models"
	"shopfront/internal/seeded"
)

const reviewStride = 211

// tierWeights are cumulative percentages for drawing a star tier
// (5, 4, 3, 2; no 1-star tier is generated).
type tierWeights [4]int

func weightsFor(rating float64) tierWeights {
	switch {
	case rating >= 4.7:
		return tierWeights{62, 87, 96, 100}
	case rating >= 4.3:
		return tierWeights{48, 80, 93, 100}
	case rating >= 3.8:
		return tierWeights{35, 68, 88, 100}
	default:
		return tierWeights{22, 56, 82, 100}
	}
}

func drawRating(seed int64, w tierWeights) int {
	roll := seeded.IntBetween(seed, 1, 100)
	for i, cutoff := range w {
		if roll <= cutoff {
			return 5 - i
		}
	}
	return 2
}

// helpfulRange returns the inclusive helpful-vote range for a tier;
// better reviews accumulate more helpful votes.
func helpfulRange(rating int) (int, int) {
	switch rating {
	case 5:
		return 12, 95
	case 4:
		return 8, 60
	case 3:
		return 3, 30
	default:
		return 0, 15
	}
}

var authorPool = []string{
	"Sarah M.", "James K.", "Priya R.", "Michael T.", "Emma L.",
	"David C.", "Aisha B.", "Carlos G.", "Mei W.", "Tom H.",
	"Nina P.", "Omar F.", "Lucy A.", "Raj S.", "Grace O.", "Ben D.",
}

// Generate synthesizes exactly count reviews for a product, seeded per
// (product, index) so the same product always yields the same set.
// Output is sorted by helpful votes, descending.
func Generate(product models.Product, count int) []models.DetailedReview {
	if count <= 0 {
		return []models.DetailedReview{}
	}

	base := identity.Hash(product.ID) + identity.Hash(product.Name)
	weights := weightsFor(product.Rating)
	templates := templatesFor(product.Category)
	now := time.Now()

	result := make([]models.DetailedReview, 0, count)
	for i := 0; i < count; i++ {
		rs := base + int64(i)*reviewStride

		rating := drawRating(rs+1, weights)
		pool := templates[rating]
		template := pool[seeded.Index(rs+2, len(pool))]

		helpfulMin, helpfulMax := helpfulRange(rating)
		notHelpfulMax := 6
		verifiedP := 0.8
		if rating <= 3 {
			notHelpfulMax = 12
			verifiedP = 0.65
		}

		daysAgo := seeded.IntBetween(rs+3, 0, 364)
		result = append(result, models.DetailedReview{
			ID:         fmt.Sprintf("review-%d-%d", base, i),
			Author:     authorPool[seeded.Index(rs+4, len(authorPool))],
			Avatar:     fmt.Sprintf("https://i.pravatar.cc/150?img=%d", 1+seeded.Index(rs+5, 70)),
			Rating:     rating,
			Date:       now.AddDate(0, 0, -daysAgo),
			Title:      template.Title,
			Comment:    template.Comment,
			Helpful:    seeded.IntBetween(rs+6, helpfulMin, helpfulMax),
			NotHelpful: seeded.IntBetween(rs+7, 0, notHelpfulMax),
			Verified:   seeded.Chance(rs+8, verifiedP),
		})
	}

	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Helpful > result[b].Helpful
	})
	return result
}
