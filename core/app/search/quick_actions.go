package search

import "strings"

// QuickAction is a static navigation or creation shortcut
type QuickAction struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Url         string   `json:"url"`
	Priority    int      `json:"priority"`
	Keywords    []string `json:"-"`
}

// quickActions is the static registry, highest priority first
var quickActions = []QuickAction{
	{
		Id:          "nav-inventory",
		Title:       "Go to Inventory",
		Description: "Browse medical supplies, medicines and equipment",
		Icon:        "📦",
		Url:         "/inventory",
		Priority:    90,
		Keywords:    []string{"inventory", "supplies", "medicine", "equipment", "stock", "items"},
	},
	{
		Id:          "nav-archives",
		Title:       "Go to Archives",
		Description: "View archived inventory and records",
		Icon:        "🗄️",
		Url:         "/archives",
		Priority:    85,
		Keywords:    []string{"archives", "archived", "history", "old", "deleted", "stored"},
	},
	{
		Id:          "nav-logs",
		Title:       "Go to Activity Logs",
		Description: "Review audit trail and system events",
		Icon:        "📋",
		Url:         "/logs",
		Priority:    80,
		Keywords:    []string{"logs", "activity", "audit", "events", "actions", "tracking"},
	},
	{
		Id:          "nav-admin",
		Title:       "Go to Admin Management",
		Description: "Manage users, roles and system settings",
		Icon:        "⚙️",
		Url:         "/admin-management",
		Priority:    75,
		Keywords:    []string{"admin", "management", "users", "system", "settings", "control"},
	},
	{
		Id:          "nav-profile",
		Title:       "Go to Profile",
		Description: "View and edit your account settings",
		Icon:        "👤",
		Url:         "/profile",
		Priority:    70,
		Keywords:    []string{"profile", "settings", "account", "user", "preferences", "personal"},
	},
	{
		Id:          "action-add-inventory",
		Title:       "Add Inventory Item",
		Description: "Register a new supply, medicine or equipment item",
		Icon:        "➕",
		Url:         "/inventory?action=add",
		Priority:    65,
		Keywords:    []string{"add", "new", "create", "register", "+", "insert"},
	},
}

// QuickActions returns the shortcuts for a below-minimum-length query.
// An empty query returns the top actions; otherwise actions match on
// title or description substring only.
func QuickActions(query string) []QuickAction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if len(quickActions) > maxEmptyQuickActions {
			return quickActions[:maxEmptyQuickActions]
		}
		return quickActions
	}

	var matched []QuickAction
	for _, action := range quickActions {
		if quickActionMatchesText(action, query) {
			matched = append(matched, action)
		}
	}
	return matched
}

// MatchQuickActions is the full-search variant: it also consults the
// keyword shortcuts and caps the result.
func MatchQuickActions(query string) []QuickAction {
	query = strings.ToLower(strings.TrimSpace(query))

	var matched []QuickAction
	for _, action := range quickActions {
		if quickActionMatchesText(action, query) || quickActionMatchesKeyword(action, query) {
			matched = append(matched, action)
		}
	}
	if len(matched) > maxQuickActionResults {
		matched = matched[:maxQuickActionResults]
	}
	return matched
}

func quickActionMatchesText(action QuickAction, query string) bool {
	return strings.Contains(strings.ToLower(action.Title), query) ||
		strings.Contains(strings.ToLower(action.Description), query)
}

func quickActionMatchesKeyword(action QuickAction, query string) bool {
	for _, keyword := range action.Keywords {
		if strings.Contains(keyword, query) {
			return true
		}
	}
	return false
}

func (a QuickAction) toResult() *SearchResult {
	return &SearchResult{
		Id:          a.Id,
		Title:       a.Title,
		Description: a.Description,
		Category:    CategoryQuickActions,
		Icon:        a.Icon,
		Url:         a.Url,
		Priority:    a.Priority,
	}
}
