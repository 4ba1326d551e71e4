package search

import (
	"strings"

	"github.com/wichananm65/style-shop-backend/internal/textnorm"
)

var smartSuggestions = []string{
	"casual summer outfits",
	"formal business attire",
	"cozy winter sweaters",
	"trendy denim jackets",
	"elegant evening dresses",
	"comfortable activewear",
	"vintage style clothing",
	"minimalist wardrobe",
}

const (
	maxSuggestions   = 5
	blankSuggestions = 4
)

// Suggestions returns the canned search phrases containing input, at most
// five. A blank input gets the first four phrases.
func Suggestions(input string) []string {
	if IsBlank(input) {
		return append([]string(nil), smartSuggestions[:blankSuggestions]...)
	}
	q := textnorm.Lower(input)
	out := make([]string, 0, maxSuggestions)
	for _, s := range smartSuggestions {
		if strings.Contains(textnorm.Lower(s), q) {
			out = append(out, s)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
