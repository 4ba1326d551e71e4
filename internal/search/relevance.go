// Package search ranks catalog products against free-text queries and keeps
// each session's recent searches.
package search

import (
	"slices"
	"strings"

	"github.com/wichananm65/style-shop-backend/internal/product"
	"github.com/wichananm65/style-shop-backend/internal/textnorm"
)

// Field weights in hundredths. A product matching on every field scores 100,
// which Score reports as exactly 1.
const (
	weightName        = 40
	weightBrand       = 30
	weightCategory    = 20
	weightDescription = 10
)

// Result is a product annotated with its relevance to a query.
type Result struct {
	product.Product
	RelevanceScore float64 `json:"relevanceScore"`
}

// Score returns the relevance of p to query in [0, 1]. Each field counts once
// when it contains the whole folded query.
func Score(query string, p product.Product) float64 {
	return scoreFolded(textnorm.Lower(query), p.Folded())
}

func scoreFolded(q string, f product.Folded) float64 {
	points := 0
	if strings.Contains(f.Name, q) {
		points += weightName
	}
	if strings.Contains(f.Brand, q) {
		points += weightBrand
	}
	if strings.Contains(f.Category, q) {
		points += weightCategory
	}
	if strings.Contains(f.Description, q) {
		points += weightDescription
	}
	return float64(points) / 100
}

// Matches reports whether any whitespace token of query occurs in the
// product's searchable text.
func Matches(query string, p product.Product) bool {
	return matchesTokens(textnorm.Tokens(query), p.Folded())
}

func matchesTokens(tokens []string, f product.Folded) bool {
	for _, t := range tokens {
		if strings.Contains(f.Searchable, t) {
			return true
		}
	}
	return false
}

// IsBlank reports whether query has no tokens.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Rank filters products to those matching query and orders them by
// descending score, keeping input order among equal scores. A blank query
// returns every product unscored in input order, and scored is false.
func Rank(query string, products []product.Product) (results []Result, scored bool) {
	if IsBlank(query) {
		results = make([]Result, len(products))
		for i, p := range products {
			results[i] = Result{Product: p}
		}
		return results, false
	}

	q := textnorm.Lower(query)
	tokens := strings.Fields(q)
	results = make([]Result, 0)
	for _, p := range products {
		f := p.Folded()
		if !matchesTokens(tokens, f) {
			continue
		}
		results = append(results, Result{Product: p, RelevanceScore: scoreFolded(q, f)})
	}
	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case a.RelevanceScore > b.RelevanceScore:
			return -1
		case a.RelevanceScore < b.RelevanceScore:
			return 1
		}
		return 0
	})
	return results, true
}

// Products strips the scores off results.
func Products(results []Result) []product.Product {
	out := make([]product.Product, len(results))
	for i, r := range results {
		out[i] = r.Product
	}
	return out
}
