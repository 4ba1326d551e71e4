package product

import (
	"strings"

	"github.com/wichananm65/style-shop-backend/internal/textnorm"
)

// Product is a catalog entry. It is immutable once it has been loaded into a
// Catalog. JSON tags follow the camelCase names the storefront client uses.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	IsNew         bool     `json:"isNew"`
	IsOnSale      bool     `json:"isOnSale"`

	folded *Folded
}

// Folded is the case-folded text of a product used by the scorers.
type Folded struct {
	Name        string
	Brand       string
	Category    string
	Description string
	Colors      []string
	// Searchable is name, brand, category, colors and description joined by
	// single spaces.
	Searchable string
}

// Normalize returns p with its folded text computed. Products entering a
// Catalog are normalized once so nothing downstream lowercases inline.
func Normalize(p Product) Product {
	f := fold(p)
	p.folded = &f
	return p
}

// Folded returns the folded text of p, computing it when p was never
// normalized.
func (p Product) Folded() Folded {
	if p.folded != nil {
		return *p.folded
	}
	return fold(p)
}

func fold(p Product) Folded {
	f := Folded{
		Name:        textnorm.Lower(p.Name),
		Brand:       textnorm.Lower(p.Brand),
		Category:    textnorm.Lower(p.Category),
		Description: textnorm.Lower(p.Description),
		Colors:      textnorm.LowerAll(p.Colors),
	}
	f.Searchable = strings.Join([]string{f.Name, f.Brand, f.Category, strings.Join(f.Colors, " "), f.Description}, " ")
	return f
}

// HasSize reports whether size is one of the product's sizes.
func (p Product) HasSize(size string) bool {
	return contains(p.Sizes, size)
}

// HasColor reports whether color is one of the product's colors.
func (p Product) HasColor(color string) bool {
	return contains(p.Colors, color)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// AllowedCategories contains the garment categories sold by the store.
var AllowedCategories = []string{
	"T-Shirts",
	"Jackets",
	"Dresses",
	"Pants",
	"Sweaters",
	"Activewear",
	"Shirts",
	"Skirts",
}

// Validate returns a map of field name to message for every invalid field.
// An empty map means the product is acceptable.
func Validate(p Product) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "name is required"
	}
	if strings.TrimSpace(p.Brand) == "" {
		errs["brand"] = "brand is required"
	}
	if !contains(AllowedCategories, p.Category) {
		errs["category"] = "invalid category"
	}
	if p.Price <= 0 {
		errs["price"] = "price must be > 0"
	}
	if p.OriginalPrice != nil && *p.OriginalPrice <= p.Price {
		errs["originalPrice"] = "originalPrice must be greater than price"
	}
	if len(p.Sizes) == 0 {
		errs["sizes"] = "at least one size is required"
	}
	if len(p.Colors) == 0 {
		errs["colors"] = "at least one color is required"
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	if p.ReviewCount < 0 {
		errs["reviewCount"] = "reviewCount must be >= 0"
	}
	return errs
}
