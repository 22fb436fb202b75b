package menu

import "github.com/nopickles/nopickles/internal/models"

// menuData is the static menu. Declaration order is meaningful: it defines
// iteration order for listings and the tie-break for substring resolution.
var menuData = []models.MenuItem{
	// Burgers
	{
		ID:          "burger_classic",
		Name:        "Classic Burger",
		Category:    "burgers",
		Price:       8.99,
		Description: "Beef patty, lettuce, tomato, onion, pickles, and special sauce",
		Available:   true,
	},
	{
		ID:          "burger_cheese",
		Name:        "Cheeseburger",
		Category:    "burgers",
		Price:       9.99,
		Description: "Classic burger with melted cheddar cheese",
		Available:   true,
	},
	{
		ID:          "burger_double",
		Name:        "Double Burger",
		Category:    "burgers",
		Price:       12.99,
		Description: "Two beef patties with all the fixings",
		Available:   true,
	},
	{
		ID:          "burger_veggie",
		Name:        "Veggie Burger",
		Category:    "burgers",
		Price:       9.49,
		Description: "Plant-based patty with fresh vegetables",
		Available:   true,
	},

	// Sides
	{
		ID:          "fries_regular",
		Name:        "French Fries",
		Category:    "sides",
		Price:       3.49,
		Description: "Crispy golden french fries",
		Available:   true,
	},
	{
		ID:          "fries_loaded",
		Name:        "Loaded Fries",
		Category:    "sides",
		Price:       5.99,
		Description: "Fries topped with cheese, bacon, and sour cream",
		Available:   true,
	},
	{
		ID:          "onion_rings",
		Name:        "Onion Rings",
		Category:    "sides",
		Price:       4.49,
		Description: "Crispy battered onion rings",
		Available:   true,
	},
	{
		ID:          "salad",
		Name:        "Garden Salad",
		Category:    "sides",
		Price:       4.99,
		Description: "Fresh mixed greens with your choice of dressing",
		Available:   true,
	},

	// Drinks
	{
		ID:          "drink_cola",
		Name:        "Cola",
		Category:    "drinks",
		Price:       2.49,
		Description: "Classic cola soft drink",
		Available:   true,
	},
	{
		ID:          "drink_sprite",
		Name:        "Lemon-Lime Soda",
		Category:    "drinks",
		Price:       2.49,
		Description: "Refreshing lemon-lime soda",
		Available:   true,
	},
	{
		ID:          "drink_water",
		Name:        "Bottled Water",
		Category:    "drinks",
		Price:       1.99,
		Description: "Pure bottled water",
		Available:   true,
	},
	{
		ID:          "drink_shake",
		Name:        "Milkshake",
		Category:    "drinks",
		Price:       4.99,
		Description: "Creamy milkshake - vanilla, chocolate, or strawberry",
		Available:   true,
	},

	// Desserts
	{
		ID:          "dessert_pie",
		Name:        "Apple Pie",
		Category:    "desserts",
		Price:       3.49,
		Description: "Warm apple pie with cinnamon",
		Available:   true,
	},
	{
		ID:          "dessert_sundae",
		Name:        "Ice Cream Sundae",
		Category:    "desserts",
		Price:       3.99,
		Description: "Vanilla ice cream with chocolate sauce and cherry",
		Available:   true,
	},
}
