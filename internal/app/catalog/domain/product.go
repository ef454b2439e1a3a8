package domain

import (
	"math"
	"time"
)

// Product is a read-only projection owned by the remote catalog
// service. The SDK never mutates products; stock and price here are
// snapshots at query time.
type Product struct {
	ID           string
	Title        string
	Description  string
	Category     Category
	Price        float64
	Stock        int
	Image        string
	FastDelivery bool
	Reviews      []Review
}

// Review is one customer review on a product.
type Review struct {
	UserID    string
	Rating    int // 1-5
	Text      string
	CreatedAt time.Time
}

// AverageRating returns the arithmetic mean of the review ratings
// rounded to one decimal place, or 0 for an empty list. Derived on
// demand, never stored.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}

	avg := float64(total) / float64(len(reviews))
	return math.Round(avg*10) / 10
}

// AverageRating returns the product's derived rating.
func (p *Product) AverageRating() float64 {
	return AverageRating(p.Reviews)
}

// InStock returns true if the stock snapshot is positive.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
