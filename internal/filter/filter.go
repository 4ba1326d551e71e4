package filter

import (
	"github.com/wichananm65/style-shop-backend/internal/product"
)

// All is the top-level category that places no constraint.
const All = product.AllCategories

// MaxPrice is the default upper bound of the price slider.
const MaxPrice = 1000

// State is the set of facet selections the shopper has made. Empty facets
// place no constraint.
type State struct {
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
	Sizes      []string   `json:"sizes"`
	Colors     []string   `json:"colors"`
	PriceRange [2]float64 `json:"priceRange"`
	Rating     float64    `json:"rating"`
}

func DefaultState() State {
	return State{PriceRange: [2]float64{0, MaxPrice}}
}

// Apply returns the products that satisfy every facet of s under the given
// top-level category, in input order. Values match exactly. Only the upper
// price bound is checked. The result is never nil.
func Apply(products []product.Product, category string, s State) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if Match(p, category, s) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single product passes the filter.
func Match(p product.Product, category string, s State) bool {
	if category != "" && category != All && p.Category != category {
		return false
	}
	if len(s.Categories) > 0 && !in(s.Categories, p.Category) {
		return false
	}
	if len(s.Brands) > 0 && !in(s.Brands, p.Brand) {
		return false
	}
	if len(s.Sizes) > 0 && !overlaps(s.Sizes, p.Sizes) {
		return false
	}
	if len(s.Colors) > 0 && !overlaps(s.Colors, p.Colors) {
		return false
	}
	if p.Price > s.PriceRange[1] {
		return false
	}
	if s.Rating > 0 && p.Rating < s.Rating {
		return false
	}
	return true
}

func in(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func overlaps(selected, values []string) bool {
	for _, v := range values {
		if in(selected, v) {
			return true
		}
	}
	return false
}
