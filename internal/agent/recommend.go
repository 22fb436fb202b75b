package agent

import "github.com/nopickles/nopickles/internal/models"

// recommend derives upsell suggestions from the category gaps in the
// current order. All applicable suggestions are returned, in this fixed
// order: sides, drink, dessert.
func (a *Agent) recommend(order *models.Order) []string {
	present := make(map[string]bool)
	for _, line := range order.Items {
		item, err := a.catalog.GetByID(line.MenuItemID)
		if err != nil {
			continue
		}
		present[item.Category] = true
	}

	suggestions := []string{}
	if present["burgers"] && !present["sides"] {
		suggestions = append(suggestions, "How about some fries to go with that?")
	}
	if !present["drinks"] {
		suggestions = append(suggestions, "Would you like a drink?")
	}
	if len(order.Items) >= 2 && !present["desserts"] {
		suggestions = append(suggestions, "Don't forget dessert! Our apple pie is delicious.")
	}
	return suggestions
}
