package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/style-shop-backend/internal/product"
)

func ids(ps []product.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	catalog := product.SeedProducts()

	cases := []struct {
		name     string
		category string
		state    func(*State)
		want     []string
	}{
		{"default state keeps everything", All, func(*State) {}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"top-level category", "Pants", func(*State) {}, []string{"4"}},
		{"categories facet ors values", All, func(s *State) { s.Categories = []string{"Skirts", "Dresses"} }, []string{"3", "8"}},
		{"brands facet", All, func(s *State) { s.Brands = []string{"Sport"} }, []string{"6"}},
		{"size overlap", All, func(s *State) { s.Sizes = []string{"XXL", "28"} }, []string{"4", "6"}},
		{"color overlap", All, func(s *State) { s.Colors = []string{"Cream"} }, []string{"5"}},
		{"rating floor", All, func(s *State) { s.Rating = 4.6 }, []string{"2", "3", "5"}},
		{"max price", All, func(s *State) { s.PriceRange[1] = 50 }, []string{"1", "6", "8"}},
		{"facets are anded", All, func(s *State) {
			s.Colors = []string{"Navy"}
			s.Sizes = []string{"XS"}
			s.PriceRange[1] = 60
		}, []string{"1", "8"}},
		{"category conflicts with facet", "Pants", func(s *State) { s.Categories = []string{"Skirts"} }, []string{}},
		{"exact match only", All, func(s *State) { s.Colors = []string{"navy"} }, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := DefaultState()
			tc.state(&s)
			got := Apply(catalog, tc.category, s)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestApply_IgnoresLowerPriceBound(t *testing.T) {
	s := DefaultState()
	s.PriceRange = [2]float64{100, 1000}
	assert.Len(t, Apply(product.SeedProducts(), All, s), 8)
}

func TestApply_Idempotent(t *testing.T) {
	s := DefaultState()
	s.Colors = []string{"Black"}
	s.PriceRange[1] = 70
	once := Apply(product.SeedProducts(), All, s)
	twice := Apply(once, All, s)
	assert.Equal(t, ids(once), ids(twice))
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, All, DefaultState())
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSort(t *testing.T) {
	cases := map[SortKey][]string{
		SortFeatured:  {"1", "2", "3", "4", "5", "6", "7", "8"},
		SortPriceAsc:  {"1", "8", "6", "7", "4", "5", "3", "2"},
		SortPriceDesc: {"2", "3", "5", "4", "7", "6", "8", "1"},
		SortNewest:    {"2", "7", "1", "3", "4", "5", "6", "8"},
		SortRating:    {"2", "5", "3", "1", "7", "4", "6", "8"},
	}
	for key, want := range cases {
		t.Run(string(key), func(t *testing.T) {
			ps := product.SeedProducts()
			require.NoError(t, Sort(ps, key))
			assert.Equal(t, want, ids(ps))
		})
	}

	err := Sort(product.SeedProducts(), "cheapest")
	assert.True(t, errors.Is(err, ErrUnknownSort))
}

func TestParseQuery(t *testing.T) {
	values := map[string]string{
		"category": "Jackets",
		"sizes":    "S, M,,",
		"colors":   "Light Blue",
		"maxPrice": "120.5",
		"rating":   "4",
		"sort":     "price_desc",
	}
	q, err := ParseQuery(func(k string) string { return values[k] })
	require.NoError(t, err)
	assert.Equal(t, "Jackets", q.Category)
	assert.Equal(t, []string{"S", "M"}, q.State.Sizes)
	assert.Equal(t, []string{"Light Blue"}, q.State.Colors)
	assert.Nil(t, q.State.Brands)
	assert.Equal(t, [2]float64{0, 120.5}, q.State.PriceRange)
	assert.Equal(t, 4.0, q.State.Rating)
	assert.Equal(t, SortPriceDesc, q.Sort)

	q, err = ParseQuery(func(string) string { return "" })
	require.NoError(t, err)
	assert.Equal(t, All, q.Category)
	assert.Equal(t, DefaultState(), q.State)
	assert.Equal(t, SortFeatured, q.Sort)

	_, err = ParseQuery(func(k string) string {
		if k == "maxPrice" {
			return "cheap"
		}
		return ""
	})
	assert.Error(t, err)

	for _, raw := range []string{"NaN", "Inf", "-inf", "+Infinity"} {
		for _, key := range []string{"minPrice", "maxPrice", "rating"} {
			_, err = ParseQuery(func(k string) string {
				if k == key {
					return raw
				}
				return ""
			})
			assert.Error(t, err, "%s=%s", key, raw)
		}
	}
}
