package models

import "time"

// DetailedReview is a synthesized product review. Reviews are generated
// on demand per product and never persisted.
type DetailedReview struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Avatar     string    `json:"avatar"`
	Rating     int       `json:"rating"`
	Date       time.Time `json:"date"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
	Helpful    int       `json:"helpful"`
	NotHelpful int       `json:"not_helpful"`
	Verified   bool      `json:"verified"`
}

// SpendingPoint is one month of the rolling 12-month spending analytics
// window. Points are recomputed from the seed on demand, never stored.
type SpendingPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}
