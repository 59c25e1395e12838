package repository

import "github.com/deppfellow/menu-api/internal/model/menu"

func boolPtr(b bool) *bool { return &b }

// SeedMenuItems returns the menu the service starts with.
// A fresh slice is built on every call.
func SeedMenuItems() []menu.MenuItem {
	return []menu.MenuItem{
		{
			ID:          1,
			Name:        "Classic Burger",
			Description: "Beef patty with lettuce, tomato, and cheese on a sesame seed bun",
			Price:       12.99,
			Category:    menu.CategoryEntree,
			Ingredients: []string{"beef", "lettuce", "tomato", "cheese", "bun"},
			Available:   boolPtr(true),
		},
		{
			ID:          2,
			Name:        "Chicken Caesar Salad",
			Description: "Grilled chicken breast over romaine lettuce with parmesan and croutons",
			Price:       11.50,
			Category:    menu.CategoryEntree,
			Ingredients: []string{"chicken", "romaine lettuce", "parmesan cheese", "croutons", "caesar dressing"},
			Available:   boolPtr(true),
		},
		{
			ID:          3,
			Name:        "Mozzarella Sticks",
			Description: "Crispy breaded mozzarella served with marinara sauce",
			Price:       8.99,
			Category:    menu.CategoryAppetizer,
			Ingredients: []string{"mozzarella cheese", "breadcrumbs", "marinara sauce"},
			Available:   boolPtr(true),
		},
		{
			ID:          4,
			Name:        "Chocolate Lava Cake",
			Description: "Warm chocolate cake with molten center, served with vanilla ice cream",
			Price:       7.99,
			Category:    menu.CategoryDessert,
			Ingredients: []string{"chocolate", "flour", "eggs", "butter", "vanilla ice cream"},
			Available:   boolPtr(true),
		},
		{
			ID:          5,
			Name:        "Fresh Lemonade",
			Description: "House-made lemonade with fresh lemons and mint",
			Price:       3.99,
			Category:    menu.CategoryBeverage,
			Ingredients: []string{"lemons", "sugar", "water", "mint"},
			Available:   boolPtr(true),
		},
		{
			ID:          6,
			Name:        "Fish and Chips",
			Description: "Beer-battered cod with seasoned fries and coleslaw",
			Price:       14.99,
			Category:    menu.CategoryEntree,
			Ingredients: []string{"cod", "beer batter", "potatoes", "coleslaw", "tartar sauce"},
			Available:   boolPtr(false),
		},
	}
}
