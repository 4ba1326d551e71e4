// Package style scores how well two garments go together and builds outfit
// suggestions around a base product.
package style

import (
	"slices"

	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/textnorm"
)

const (
	colorMatch    = 0.9
	colorDefault  = 0.5
	categoryMatch = 0.8
	categoryMiss  = 0.4
	sameBrand     = 0.8
	otherBrand    = 0.6

	// outfit items must score strictly above this
	outfitThreshold = 0.6
	maxOutfitItems  = 6
)

// colorPairs maps a folded color to the folded colors it pairs with.
var colorPairs = map[string][]string{
	"black": {"white", "gray", "navy", "cream"},
	"white": {"black", "navy", "gray", "blue"},
	"navy":  {"white", "cream", "gray", "khaki"},
	"gray":  {"white", "black", "navy", "blue"},
}

// categoryPairs is directed: Dresses pair with Jackets, but Skirts pair
// with nothing even though T-Shirts pair with Skirts.
var categoryPairs = map[string][]string{
	"T-Shirts": {"Jackets", "Pants", "Skirts"},
	"Jackets":  {"T-Shirts", "Pants", "Dresses"},
	"Pants":    {"T-Shirts", "Jackets", "Sweaters"},
	"Dresses":  {"Jackets"},
	"Sweaters": {"Pants", "Skirts"},
}

// ColorScore returns 0.9 when some color of the first list pairs with some
// color of the second, and 0.5 otherwise. Colors compare case-insensitively.
func ColorScore(colors1, colors2 []string) float64 {
	return colorScoreFolded(textnorm.LowerAll(colors1), textnorm.LowerAll(colors2))
}

func colorScoreFolded(colors1, colors2 []string) float64 {
	for _, c1 := range colors1 {
		pairs, ok := colorPairs[c1]
		if !ok {
			continue
		}
		for _, c2 := range colors2 {
			if slices.Contains(pairs, c2) {
				return colorMatch
			}
		}
	}
	return colorDefault
}

// CategoryScore returns 0.8 when category2 is listed for category1.
// Categories compare exactly.
func CategoryScore(category1, category2 string) float64 {
	if slices.Contains(categoryPairs[category1], category2) {
		return categoryMatch
	}
	return categoryMiss
}

func BrandScore(brand1, brand2 string) float64 {
	if brand1 == brand2 {
		return sameBrand
	}
	return otherBrand
}

// Compatibility is the mean of the color, category and brand scores of b
// seen from a.
func Compatibility(a, b product.Product) float64 {
	color := colorScoreFolded(a.Folded().Colors, b.Folded().Colors)
	return (color + CategoryScore(a.Category, b.Category) + BrandScore(a.Brand, b.Brand)) / 3
}

// OutfitItem is a product suggested to wear with a base product.
type OutfitItem struct {
	product.Product
	Compatibility float64 `json:"compatibility"`
}

// Outfits scores every product other than base against it and returns the
// six best scoring above 0.6, best first. Equal scores keep input order.
// The result is never nil.
func Outfits(base product.Product, products []product.Product) []OutfitItem {
	items := make([]OutfitItem, 0)
	for _, p := range products {
		if p.ID == base.ID {
			continue
		}
		score := Compatibility(base, p)
		if score > outfitThreshold {
			items = append(items, OutfitItem{Product: p, Compatibility: score})
		}
	}
	slices.SortStableFunc(items, func(a, b OutfitItem) int {
		switch {
		case a.Compatibility > b.Compatibility:
			return -1
		case a.Compatibility < b.Compatibility:
			return 1
		}
		return 0
	})
	if len(items) > maxOutfitItems {
		items = items[:maxOutfitItems]
	}
	return items
}
