package product

import "fmt"

func ptrFloat(v float64) *float64 { return &v }

func photo(id int) string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=400", id, id)
}

// SeedProducts returns the store's launch collection.
func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Premium Cotton T-Shirt",
			Price:         29.99,
			OriginalPrice: ptrFloat(39.99),
			Image:         photo(996329),
			Category:      "T-Shirts",
			Brand:         "Premium",
			Sizes:         []string{"XS", "S", "M", "L", "XL"},
			Colors:        []string{"Black", "White", "Navy", "Gray"},
			Rating:        4.5,
			ReviewCount:   128,
			Description:   "Ultra-soft premium cotton t-shirt with perfect fit and lasting comfort.",
			IsOnSale:      true,
		},
		{
			ID:          "2",
			Name:        "Classic Denim Jacket",
			Price:       89.99,
			Image:       photo(1040945),
			Category:    "Jackets",
			Brand:       "Denim Co.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Blue", "Black", "Light Blue"},
			Rating:      4.8,
			ReviewCount: 89,
			Description: "Timeless denim jacket crafted from premium denim with vintage wash.",
			IsNew:       true,
		},
		{
			ID:          "3",
			Name:        "Elegant Summer Dress",
			Price:       79.99,
			Image:       photo(985635),
			Category:    "Dresses",
			Brand:       "Elegance",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Floral", "Navy", "Pink", "Black"},
			Rating:      4.6,
			ReviewCount: 156,
			Description: "Flowing summer dress perfect for any occasion with breathable fabric.",
		},
		{
			ID:            "4",
			Name:          "Slim Fit Chinos",
			Price:         59.99,
			OriginalPrice: ptrFloat(79.99),
			Image:         photo(1598507),
			Category:      "Pants",
			Brand:         "Tailored",
			Sizes:         []string{"28", "30", "32", "34", "36"},
			Colors:        []string{"Khaki", "Navy", "Black", "Olive"},
			Rating:        4.4,
			ReviewCount:   92,
			Description:   "Contemporary slim-fit chinos with stretch comfort for everyday wear.",
			IsOnSale:      true,
		},
		{
			ID:          "5",
			Name:        "Cozy Knit Sweater",
			Price:       69.99,
			Image:       photo(4210789),
			Category:    "Sweaters",
			Brand:       "Comfort",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Cream", "Gray", "Navy", "Burgundy"},
			Rating:      4.7,
			ReviewCount: 203,
			Description: "Luxuriously soft knit sweater perfect for layering in cooler weather.",
		},
		{
			ID:          "6",
			Name:        "Athletic Joggers",
			Price:       45.99,
			Image:       photo(7945918),
			Category:    "Activewear",
			Brand:       "Sport",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black", "Gray", "Navy", "Charcoal"},
			Rating:      4.3,
			ReviewCount: 167,
			Description: "High-performance joggers with moisture-wicking technology and comfortable fit.",
		},
		{
			ID:          "7",
			Name:        "Button-Down Shirt",
			Price:       54.99,
			Image:       photo(1040945),
			Category:    "Shirts",
			Brand:       "Classic",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Light Blue", "Pink", "Gray"},
			Rating:      4.5,
			ReviewCount: 134,
			Description: "Crisp button-down shirt perfect for business casual and formal occasions.",
			IsNew:       true,
		},
		{
			ID:            "8",
			Name:          "Midi Skirt",
			Price:         39.99,
			OriginalPrice: ptrFloat(54.99),
			Image:         photo(985635),
			Category:      "Skirts",
			Brand:         "Modern",
			Sizes:         []string{"XS", "S", "M", "L"},
			Colors:        []string{"Black", "Navy", "Burgundy", "Olive"},
			Rating:        4.2,
			ReviewCount:   78,
			Description:   "Versatile midi skirt that transitions seamlessly from day to night.",
			IsOnSale:      true,
		},
	}
}

// SeedFacets returns the storefront's fixed filter vocabularies.
func SeedFacets() Facets {
	return Facets{
		Categories: []string{AllCategories, "T-Shirts", "Jackets", "Dresses", "Pants", "Sweaters", "Activewear", "Shirts", "Skirts"},
		Brands:     []string{"Premium", "Denim Co.", "Elegance", "Tailored", "Comfort", "Sport", "Classic", "Modern"},
		Sizes:      []string{"XS", "S", "M", "L", "XL", "XXL", "28", "30", "32", "34", "36"},
		Colors:     []string{"Black", "White", "Navy", "Gray", "Blue", "Light Blue", "Pink", "Floral", "Khaki", "Olive", "Cream", "Burgundy", "Charcoal"},
	}
}

// SeedCatalog builds a catalog from the seed products and vocabularies.
func SeedCatalog() *Catalog {
	return NewCatalog(SeedProducts(), SeedFacets())
}
