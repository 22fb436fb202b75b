package agent

import "strings"

// Intent is the classified purpose of a customer message.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentMenu     Intent = "menu"
	IntentAdd      Intent = "add_item"
	IntentRemove   Intent = "remove_item"
	IntentComplete Intent = "complete_order"
	IntentHelp     Intent = "help"
	IntentUnknown  Intent = "unknown"
)

// intentRule ties an intent to the substrings that trigger it.
type intentRule struct {
	intent   Intent
	triggers []string
}

// intentRules is evaluated top to bottom and the first rule with any trigger
// present in the message wins. The ordering is a contract, not a convenience:
// trigger sets overlap (e.g. "remove my order" carries both an add and a
// remove trigger), so reordering the rules changes behavior.
var intentRules = []intentRule{
	{IntentGreeting, []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}},
	{IntentMenu, []string{"menu", "what do you have", "what's available", "show me", "options"}},
	{IntentAdd, []string{"want", "get", "add", "order", "i'll have", "give me", "can i get"}},
	{IntentRemove, []string{"remove", "delete", "cancel", "take off", "no"}},
	{IntentComplete, []string{"done", "complete", "finish", "checkout", "that's all", "that's it"}},
	{IntentHelp, []string{"help", "how"}},
}

// classify returns the intent of an already-normalized message, or
// IntentUnknown when no rule matches.
func classify(message string) Intent {
	for _, rule := range intentRules {
		if rule.matches(message) {
			return rule.intent
		}
	}
	return IntentUnknown
}

// classifyAfter classifies using only the rules ranked below the given
// intent. IntentUnknown means none of the later rules matched.
func classifyAfter(message string, after Intent) Intent {
	seen := false
	for _, rule := range intentRules {
		if !seen {
			seen = rule.intent == after
			continue
		}
		if rule.matches(message) {
			return rule.intent
		}
	}
	return IntentUnknown
}

func (r intentRule) matches(message string) bool {
	for _, trigger := range r.triggers {
		if strings.Contains(message, trigger) {
			return true
		}
	}
	return false
}
