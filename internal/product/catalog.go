package product

// AllCategories is the sentinel top-level category meaning "no constraint".
const AllCategories = "All"

// Facets holds the filterable vocabularies of a catalog.
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	Sizes      []string `json:"sizes"`
	Colors     []string `json:"colors"`
}

// Catalog is the read-only universe of products. It is safe for concurrent
// readers because nothing mutates it after NewCatalog returns.
type Catalog struct {
	products []Product
	index    map[string]int
	facets   Facets
}

// NewCatalog normalizes products and builds the catalog. When facets is the
// zero value the vocabularies are derived from the products in first-seen
// order. Categories always start with AllCategories.
func NewCatalog(products []Product, facets Facets) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		if _, dup := c.index[p.ID]; dup {
			continue
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, Normalize(p))
	}

	if facets.Categories == nil && facets.Brands == nil && facets.Sizes == nil && facets.Colors == nil {
		facets = deriveFacets(c.products)
	}
	if len(facets.Categories) == 0 || facets.Categories[0] != AllCategories {
		facets.Categories = append([]string{AllCategories}, facets.Categories...)
	}
	c.facets = facets
	return c
}

// Products returns a copy of the catalog in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product by id.
func (c *Catalog) ByID(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Facets returns a copy of the facet vocabularies.
func (c *Catalog) Facets() Facets {
	return Facets{
		Categories: append([]string(nil), c.facets.Categories...),
		Brands:     append([]string(nil), c.facets.Brands...),
		Sizes:      append([]string(nil), c.facets.Sizes...),
		Colors:     append([]string(nil), c.facets.Colors...),
	}
}

func deriveFacets(products []Product) Facets {
	var f Facets
	seen := map[string]map[string]bool{"c": {}, "b": {}, "s": {}, "o": {}}
	add := func(kind string, dst *[]string, v string) {
		if !seen[kind][v] {
			seen[kind][v] = true
			*dst = append(*dst, v)
		}
	}
	for _, p := range products {
		add("c", &f.Categories, p.Category)
		add("b", &f.Brands, p.Brand)
		for _, s := range p.Sizes {
			add("s", &f.Sizes, s)
		}
		for _, col := range p.Colors {
			add("o", &f.Colors, col)
		}
	}
	return f
}
