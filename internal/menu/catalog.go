package menu

import (
	"errors"
	"strings"

	"github.com/nopickles/nopickles/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// keywordRule maps a generic noun to the default item it stands for.
// Order matters: Resolve checks rules top to bottom and the first keyword
// found in the input wins.
type keywordRule struct {
	keyword string
	itemID  string
}

var keywordRules = []keywordRule{
	{"burger", "burger_classic"},
	{"fries", "fries_regular"},
	{"drink", "drink_cola"},
	{"soda", "drink_cola"},
	{"water", "drink_water"},
	{"shake", "drink_shake"},
	{"salad", "salad"},
	{"onion", "onion_rings"},
	{"dessert", "dessert_pie"},
	{"pie", "dessert_pie"},
	{"ice cream", "dessert_sundae"},
}

// Catalog holds the fixed set of sellable items with lookup structures
// derived at construction. It is read-only after NewCatalog returns and is
// safe for unlimited concurrent readers.
type Catalog struct {
	items      []models.MenuItem
	byID       map[string]models.MenuItem
	byCategory map[string][]models.MenuItem
	categories []string
}

// NewCatalog builds the catalog from the static menu data.
func NewCatalog() *Catalog {
	c := &Catalog{
		items:      menuData,
		byID:       make(map[string]models.MenuItem, len(menuData)),
		byCategory: make(map[string][]models.MenuItem),
	}
	for _, item := range menuData {
		c.byID[item.ID] = item
		if _, seen := c.byCategory[item.Category]; !seen {
			c.categories = append(c.categories, item.Category)
		}
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item)
	}
	return c
}

// Items returns every menu item in declaration order.
func (c *Catalog) Items() []models.MenuItem {
	items := make([]models.MenuItem, len(c.items))
	copy(items, c.items)
	return items
}

// Categories returns category names in order of first appearance.
func (c *Catalog) Categories() []string {
	categories := make([]string, len(c.categories))
	copy(categories, c.categories)
	return categories
}

// ByCategory returns the items of one category, preserving declaration
// order, or ErrItemNotFound for an unknown category.
func (c *Catalog) ByCategory(category string) ([]models.MenuItem, error) {
	items, ok := c.byCategory[category]
	if !ok {
		return nil, ErrItemNotFound
	}
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out, nil
}

// GetByID returns the item with the given id.
func (c *Catalog) GetByID(id string) (models.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return models.MenuItem{}, ErrItemNotFound
	}
	return item, nil
}

// Resolve maps free text to a single catalog item. Three tiers are tried in
// priority order, first match wins:
//
//  1. exact: an item whose name equals the whole input, case-insensitively
//  2. substring: the first item (declaration order) whose name appears
//     anywhere inside the input
//  3. keyword: the first keyword rule whose keyword appears in the input
//
// First match wins over best or longest match; callers depend on that.
func (c *Catalog) Resolve(text string) (models.MenuItem, error) {
	query := strings.ToLower(text)

	for _, item := range c.items {
		if strings.ToLower(item.Name) == query {
			return item, nil
		}
	}

	for _, item := range c.items {
		if strings.Contains(query, strings.ToLower(item.Name)) {
			return item, nil
		}
	}

	for _, rule := range keywordRules {
		if strings.Contains(query, rule.keyword) {
			return c.GetByID(rule.itemID)
		}
	}

	return models.MenuItem{}, ErrItemNotFound
}
