// Package textnorm is the one place storefront text gets lowercased.
// Product text is lowered when it enters the catalog and queries are lowered
// when they enter a scorer, so comparisons downstream are plain substring
// checks.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lower returns the lowercase form of s. It maps letter by letter without
// full case folding, so "Straße" stays "straße" rather than "strasse".
func Lower(s string) string {
	// cases.Caser is not safe for concurrent use.
	return cases.Lower(language.Und).String(s)
}

// LowerAll lowers every element of in into a new slice.
func LowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Lower(s)
	}
	return out
}

// Tokens lowers s and splits it on whitespace.
func Tokens(s string) []string {
	return strings.Fields(Lower(s))
}
