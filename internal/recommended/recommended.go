package recommended

import "fmt"

// Item is a synthetic recommendation shown in the "recommended for you"
// strip. It is not a catalog product.
type Item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Category   string  `json:"category"`
	Brand      string  `json:"brand"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}

// Preferences is the shopper's opaque preference blob. The generator
// accepts it and does not read it yet.
type Preferences map[string]any

// Rand is the random source for prices and confidences.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Count is the number of items every call produces.
const Count = 8

const firstPhotoID = 996329

var (
	categories = []string{"T-Shirts", "Jackets", "Dresses", "Pants", "Sweaters"}
	brands     = []string{"Premium", "Denim Co.", "Elegance", "Tailored", "Comfort"}
	reasons    = []string{
		"Based on your recent views",
		"Popular in your style category",
		"Trending this season",
		"Matches your color preferences",
		"Similar to your favorites",
		"Recommended by AI stylist",
		"Perfect for your wardrobe",
		"Highly rated by similar users",
	}
)

// Generator builds the placeholder recommendation list.
type Generator struct {
	Rand Rand
}

// Generate returns Count items cycling through the fixed categories, brands
// and reasons. userID, viewed and prefs are part of the contract so a real
// model can replace the generator; none of them change the output.
func (g Generator) Generate(userID string, viewed []string, prefs Preferences) []Item {
	items := make([]Item, Count)
	for i := range items {
		category := categories[i%len(categories)]
		photoID := firstPhotoID + i
		items[i] = Item{
			ID:         fmt.Sprintf("rec_%d", i),
			Name:       "AI Recommended " + category,
			Price:      g.Rand.Float64()*80 + 20,
			Image:      fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=400", photoID, photoID),
			Category:   category,
			Brand:      brands[i%len(brands)],
			Confidence: g.Rand.Float64()*0.3 + 0.7,
			Reason:     reasons[i%len(reasons)],
		}
	}
	return items
}
