package cart

import (
	"errors"

	"github.com/wichananm65/style-shop-backend/internal/product"
)

var (
	ErrInvalidVariant  = errors.New("size or color not offered for this product")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrLineNotFound    = errors.New("cart line not found")
)

// Item is one cart line. A product appears once per size and color.
type Item struct {
	Product  product.Product `json:"product"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Quantity int             `json:"quantity"`
}

// Line identifies a cart line.
type Line struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (it Item) line() Line {
	return Line{ProductID: it.Product.ID, Size: it.Size, Color: it.Color}
}

func indexOf(items []Item, l Line) int {
	for i, it := range items {
		if it.line() == l {
			return i
		}
	}
	return -1
}

// Add puts qty of p in the given size and color into items, merging with an
// existing line. The size and color must be offered by p.
func Add(items []Item, p product.Product, size, color string, qty int) ([]Item, error) {
	if qty < 1 {
		return items, ErrInvalidQuantity
	}
	if !p.HasSize(size) || !p.HasColor(color) {
		return items, ErrInvalidVariant
	}
	l := Line{ProductID: p.ID, Size: size, Color: color}
	if i := indexOf(items, l); i >= 0 {
		items[i].Quantity += qty
		return items, nil
	}
	return append(items, Item{Product: p, Size: size, Color: color, Quantity: qty}), nil
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less
// removes the line.
func UpdateQuantity(items []Item, l Line, qty int) ([]Item, error) {
	i := indexOf(items, l)
	if i < 0 {
		return items, ErrLineNotFound
	}
	if qty <= 0 {
		return append(items[:i], items[i+1:]...), nil
	}
	items[i].Quantity = qty
	return items, nil
}

func Remove(items []Item, l Line) ([]Item, error) {
	return UpdateQuantity(items, l, 0)
}

// TotalItems is the sum of line quantities.
func TotalItems(items []Item) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price times quantity over all lines.
func TotalPrice(items []Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}
