package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Query is the parsed form of a listing request.
type Query struct {
	Category string
	State    State
	Sort     SortKey
}

// ParseQuery reads category, facet lists, price bounds, rating and sort from
// get, which returns "" for missing keys. List values are comma separated.
func ParseQuery(get func(key string) string) (Query, error) {
	q := Query{
		Category: All,
		State:    DefaultState(),
		Sort:     SortKey(strings.TrimSpace(get("sort"))),
	}
	if c := strings.TrimSpace(get("category")); c != "" {
		q.Category = c
	}
	q.State.Categories = splitList(get("categories"))
	q.State.Brands = splitList(get("brands"))
	q.State.Sizes = splitList(get("sizes"))
	q.State.Colors = splitList(get("colors"))

	var err error
	if q.State.PriceRange[0], err = parseFloat(get, "minPrice", q.State.PriceRange[0]); err != nil {
		return Query{}, err
	}
	if q.State.PriceRange[1], err = parseFloat(get, "maxPrice", q.State.PriceRange[1]); err != nil {
		return Query{}, err
	}
	if q.State.Rating, err = parseFloat(get, "rating", 0); err != nil {
		return Query{}, err
	}
	if q.Sort == "" {
		q.Sort = SortFeatured
	}
	return q, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	out := make([]string, 0)
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseFloat(get func(string) string, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s: %q is not a finite number", key, raw)
	}
	return v, nil
}
