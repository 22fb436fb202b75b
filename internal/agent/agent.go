package agent

import (
	"fmt"
	"strings"

	"github.com/nopickles/nopickles/internal/menu"
	"github.com/nopickles/nopickles/internal/models"
)

// Result is what the agent hands back for every message: a reply for the
// customer plus zero or more follow-up suggestions. Intent records how the
// message was classified, for observability.
type Result struct {
	Reply       string
	Suggestions []string
	Intent      Intent
}

// Agent interprets customer messages and mutates the order accordingly. It
// holds no per-order state; one agent instance serves one conversation and
// the host guarantees at most one Handle call is in flight per order.
type Agent struct {
	catalog *menu.Catalog

	// history collects normalized messages for future context use.
	// Nothing reads it yet.
	history []string
}

// New creates an agent backed by the given catalog.
func New(catalog *menu.Catalog) *Agent {
	return &Agent{catalog: catalog}
}

// Handle classifies the message, applies the matching operation to the
// order, and returns the reply. It never fails on user text: anything
// unrecognized degrades to a generic reply.
func (a *Agent) Handle(message string, order *models.Order) Result {
	normalized := strings.ToLower(strings.TrimSpace(message))
	a.history = append(a.history, normalized)

	intent := classify(normalized)
	if intent == IntentAdd {
		// An add trigger with nothing resolvable may really be a
		// lower-priority intent sharing a keyword: "complete my order"
		// carries "order". Fall through to the later rules in that case.
		if _, err := a.catalog.Resolve(normalized); err != nil {
			if next := classifyAfter(normalized, IntentAdd); next != IntentUnknown {
				intent = next
			}
		}
	}

	switch intent {
	case IntentGreeting:
		return a.greet()
	case IntentMenu:
		return a.menuRequest(normalized)
	case IntentAdd:
		return a.addItem(normalized, order)
	case IntentRemove:
		return a.removeItem(normalized, order)
	case IntentComplete:
		return a.completeOrder(order)
	case IntentHelp:
		return a.help()
	}

	// No trigger matched, but the message may still name an item outright
	// ("a cheeseburger please"). Treat it as an add if it resolves.
	if _, err := a.catalog.Resolve(normalized); err == nil {
		return a.addItem(normalized, order)
	}
	return Result{
		Reply:       "I'm not sure what you mean. Try saying 'I want a burger' or 'show me the menu'.",
		Suggestions: []string{},
		Intent:      IntentUnknown,
	}
}

func (a *Agent) greet() Result {
	return Result{
		Reply:       "Hello! Welcome to NoPickles. What can I get for you today?",
		Suggestions: []string{"Show me the menu", "I want a burger"},
		Intent:      IntentGreeting,
	}
}

func (a *Agent) menuRequest(message string) Result {
	var category string
	switch {
	case strings.Contains(message, "burger"):
		category = "burgers"
	case strings.Contains(message, "drink"), strings.Contains(message, "beverage"):
		category = "drinks"
	case strings.Contains(message, "side"), strings.Contains(message, "fries"):
		category = "sides"
	}

	if category == "" {
		return Result{
			Reply:       "We have burgers, sides, drinks, and desserts. What would you like to know about?",
			Suggestions: []string{"Show me burgers", "What drinks do you have?"},
			Intent:      IntentMenu,
		}
	}

	items, err := a.catalog.ByCategory(category)
	if err != nil {
		items = nil
	}
	listed := make([]string, 0, len(items))
	for _, item := range items {
		listed = append(listed, fmt.Sprintf("%s ($%.2f)", item.Name, item.Price))
	}
	return Result{
		Reply:       fmt.Sprintf("Our %s: %s", category, strings.Join(listed, ", ")),
		Suggestions: []string{},
		Intent:      IntentMenu,
	}
}

func (a *Agent) addItem(message string, order *models.Order) Result {
	item, err := a.catalog.Resolve(message)
	if err != nil {
		return Result{
			Reply:       "I couldn't find that item on our menu. Could you try again or ask to see the menu?",
			Suggestions: []string{"Show me the menu"},
			Intent:      IntentAdd,
		}
	}

	line := order.Add(item)
	var reply string
	if line.Quantity > 1 {
		reply = fmt.Sprintf("Added another %s. You now have %d.", item.Name, line.Quantity)
	} else {
		reply = fmt.Sprintf("Added %s ($%.2f) to your order.", item.Name, item.Price)
	}

	return Result{
		Reply:       reply,
		Suggestions: a.recommend(order),
		Intent:      IntentAdd,
	}
}

func (a *Agent) removeItem(message string, order *models.Order) Result {
	if order.IsEmpty() {
		return Result{
			Reply:       "Your order is already empty.",
			Suggestions: []string{"Show me the menu"},
			Intent:      IntentRemove,
		}
	}

	item, err := a.catalog.Resolve(message)
	if err != nil {
		// Nothing resolved: drop the most recent line. This can remove an
		// item the customer did not name; lenient on purpose.
		line, _ := order.PopLast()
		return Result{
			Reply:       fmt.Sprintf("Removed %s from your order.", line.Name),
			Suggestions: []string{},
			Intent:      IntentRemove,
		}
	}

	line, ok := order.RemoveOne(item.ID)
	switch {
	case !ok:
		return Result{
			Reply:       fmt.Sprintf("%s is not in your order.", item.Name),
			Suggestions: []string{},
			Intent:      IntentRemove,
		}
	case line.Quantity > 0:
		return Result{
			Reply:       fmt.Sprintf("Removed one %s. You now have %d.", line.Name, line.Quantity),
			Suggestions: []string{},
			Intent:      IntentRemove,
		}
	default:
		return Result{
			Reply:       fmt.Sprintf("Removed %s from your order.", line.Name),
			Suggestions: []string{},
			Intent:      IntentRemove,
		}
	}
}

func (a *Agent) completeOrder(order *models.Order) Result {
	if order.IsEmpty() {
		return Result{
			Reply:       "Your order is empty. Would you like to add something?",
			Suggestions: []string{"Show me the menu"},
			Intent:      IntentComplete,
		}
	}

	lines := make([]string, 0, len(order.Items))
	for _, line := range order.Items {
		lines = append(lines, fmt.Sprintf("%dx %s", line.Quantity, line.Name))
	}
	return Result{
		Reply:       fmt.Sprintf("Great! Your order: %s. Total: $%.2f. Ready to complete?", strings.Join(lines, ", "), order.Total),
		Suggestions: []string{"Yes, complete it", "Add more items"},
		Intent:      IntentComplete,
	}
}

func (a *Agent) help() Result {
	return Result{
		Reply:       "You can say things like: 'I want a burger', 'Add fries', 'Show me the menu', 'Remove the salad', or 'Complete my order'.",
		Suggestions: []string{"Show me the menu", "I want a burger"},
		Intent:      IntentHelp,
	}
}
