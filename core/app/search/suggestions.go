package search

import "strings"

// searchShortcuts maps a common term to related terms users likely mean.
// shortcutOrder fixes the iteration order so suggestions stay deterministic.
var searchShortcuts = map[string][]string{
	"inventory": {"supplies", "medicine", "equipment", "stock", "medical", "items"},
	"archive":   {"archives", "history", "old", "deleted", "stored", "past"},
	"logs":      {"activity", "audit", "history", "events", "actions", "tracking"},
	"admin":     {"management", "users", "system", "settings", "control"},
	"profile":   {"settings", "account", "user", "preferences", "personal"},
	"add":       {"new", "create", "register", "+", "insert"},
	"search":    {"find", "look", "locate", "query", "filter"},
	"user":      {"admin", "staff", "employee", "people", "account"},
	"medical":   {"medicine", "drug", "pharmaceutical", "treatment", "healthcare"},
}

var shortcutOrder = []string{
	"inventory", "archive", "logs", "admin", "profile",
	"add", "search", "user", "medical",
}

var medicalTerms = []string{"medicine", "supplies", "equipment", "inventory", "stock"}

// Suggest returns completion candidates that start with the query,
// de-duplicated in first-seen order and capped.
func Suggest(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []string
	add := func(term string) {
		term = strings.ToLower(term)
		if seen[term] || !strings.HasPrefix(term, query) {
			return
		}
		seen[term] = true
		suggestions = append(suggestions, term)
	}

	for _, key := range shortcutOrder {
		add(key)
		for _, synonym := range searchShortcuts[key] {
			add(synonym)
		}
	}
	for _, term := range medicalTerms {
		add(term)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
