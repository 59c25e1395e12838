// Package menu defines the MenuItem entity and the request payloads
// used to read and mutate it.
package menu

import "slices"

// Category is the course a menu item belongs to.
type Category string

const (
	CategoryAppetizer Category = "appetizer"
	CategoryEntree    Category = "entree"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

// Categories lists every allowed category in display order.
var Categories = []Category{
	CategoryAppetizer,
	CategoryEntree,
	CategoryDessert,
	CategoryBeverage,
}

// MenuItem is one dish or drink offered by the restaurant.
//
// Available is a pointer because it is optional on create and no default
// is applied: an item created without it serializes without the key.
type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Ingredients []string `json:"ingredients"`
	Available   *bool    `json:"available,omitempty"`
}

// Clone returns a deep copy so callers never share the ingredient slice
// or availability flag with the stored record.
func (m MenuItem) Clone() MenuItem {
	out := m
	out.Ingredients = slices.Clone(m.Ingredients)
	if m.Available != nil {
		available := *m.Available
		out.Available = &available
	}
	return out
}
