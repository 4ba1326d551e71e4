package filter

import (
	"errors"
	"slices"

	"github.com/wichananm65/style-shop-backend/internal/product"
)

var ErrUnknownSort = errors.New("unknown sort key")

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest"
	SortRating    SortKey = "rating"
)

// Valid reports whether k is a known sort key. The empty key means featured.
func (k SortKey) Valid() bool {
	switch k {
	case "", SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest, SortRating:
		return true
	}
	return false
}

// Sort orders products in place. Every ordering is stable, so featured
// leaves catalog order untouched and ties keep their relative order.
func Sort(products []product.Product, key SortKey) error {
	switch key {
	case "", SortFeatured:
		return nil
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b product.Product) int {
			return cmpFloat(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b product.Product) int {
			return cmpFloat(b.Price, a.Price)
		})
	case SortNewest:
		slices.SortStableFunc(products, func(a, b product.Product) int {
			switch {
			case a.IsNew == b.IsNew:
				return 0
			case a.IsNew:
				return -1
			default:
				return 1
			}
		})
	case SortRating:
		slices.SortStableFunc(products, func(a, b product.Product) int {
			return cmpFloat(b.Rating, a.Rating)
		})
	default:
		return ErrUnknownSort
	}
	return nil
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
