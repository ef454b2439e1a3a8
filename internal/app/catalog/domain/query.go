package domain

import "fmt"

// SortKey orders a product listing. The wire strings are the values the
// remote catalog API expects in its sort parameter.
type SortKey string

const (
	SortFeatured         SortKey = "Featured"
	SortLowestPrice      SortKey = "Lowest Price"
	SortHighestPrice     SortKey = "Highest Price"
	SortAlphabeticalAsc  SortKey = "Alphabetically A-Z"
	SortAlphabeticalDesc SortKey = "Alphabetically Z-A"
)

// SortKeys lists every valid sort key in display order.
var SortKeys = []SortKey{
	SortFeatured,
	SortLowestPrice,
	SortHighestPrice,
	SortAlphabeticalAsc,
	SortAlphabeticalDesc,
}

// Validate reports whether the key is one of the known sort keys.
func (k SortKey) Validate() error {
	for _, known := range SortKeys {
		if k == known {
			return nil
		}
	}
	return fmt.Errorf("unknown sort key %q", string(k))
}

// Category narrows a listing to one product category. The empty
// category means "all".
type Category string

const (
	CategoryAll           Category = ""
	CategoryEarbuds       Category = "earbuds"
	CategoryHeadphones    Category = "headphones"
	CategorySpeakers      Category = "speakers"
	CategoryNeckbands     Category = "neckbands"
	CategorySoundbars     Category = "soundbars"
	CategoryPartySpeakers Category = "party speakers"
)

// Categories lists the selectable categories (excluding "all").
var Categories = []Category{
	CategoryEarbuds,
	CategoryHeadphones,
	CategorySpeakers,
	CategoryNeckbands,
	CategorySoundbars,
	CategoryPartySpeakers,
}

// Validate reports whether the category is known. Empty is valid.
func (c Category) Validate() error {
	if c == CategoryAll {
		return nil
	}
	for _, known := range Categories {
		if c == known {
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", string(c))
}

// PriceRange bounds the listing by price. The zero value is
// unconstrained.
type PriceRange struct {
	Min float64
	Max float64
}

// IsZero reports whether no price bound is set.
func (r PriceRange) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// Filters narrows a product listing. Zero-valued fields are
// unconstrained and omitted from the query sent to the service.
type Filters struct {
	Price            PriceRange
	MinRating        float64
	FastDeliveryOnly bool
	InStockOnly      bool
}
