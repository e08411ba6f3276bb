package search

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"meditrack/core/cache"
)

// Adapter searches one entity category
type Adapter interface {
	Category() string
	Operation() string
	TTL() time.Duration
	Search(query string) ([]*SearchResult, error)
}

// matchesAny reports whether the term is a case-insensitive substring
// of any field
func matchesAny(fields []string, term string) bool {
	if term == "" {
		return false
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func classificationIcon(classification string) string {
	switch strings.ToLower(classification) {
	case "medicines", "medicine":
		return "💊"
	case "supplies", "supply":
		return "🧰"
	case "equipment":
		return "🔬"
	default:
		return "📦"
	}
}

func severityIcon(severity string) string {
	switch strings.ToLower(severity) {
	case "error", "critical":
		return "❌"
	case "warning":
		return "⚠️"
	case "info":
		return "✅"
	default:
		return "📝"
	}
}

type inventoryAdapter struct {
	source InventorySource
}

func (a *inventoryAdapter) Category() string  { return CategoryInventory }
func (a *inventoryAdapter) Operation() string { return "inventory" }
func (a *inventoryAdapter) TTL() time.Duration {
	return cache.TTLMedium
}

func (a *inventoryAdapter) Search(query string) ([]*SearchResult, error) {
	items, err := a.source.GetAllItems(1, sourcePageSize)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	var results []*SearchResult
	for _, item := range items {
		fields := []string{
			item.Name, item.BrandName, item.Code,
			item.Category, item.Classification, item.Department, item.Status,
		}
		if !matchesAny(fields, term) {
			continue
		}

		params := url.Values{}
		params.Set("itemId", fmt.Sprintf("%d", item.Id))
		if item.Department != "" {
			params.Set("department", item.Department)
		}
		if item.Classification != "" {
			params.Set("classification", item.Classification)
		}

		description := item.Code
		if item.Department != "" {
			description = fmt.Sprintf("%s • %s", description, item.Department)
		}
		description = fmt.Sprintf("%s • Stock: %d %s", description, item.StockQuantity, item.Unit)

		results = append(results, &SearchResult{
			Id:          fmt.Sprintf("inventory_%d", item.Id),
			Title:       item.Name,
			Description: description,
			Category:    CategoryInventory,
			Icon:        classificationIcon(item.Classification),
			Url:         "/inventory?" + params.Encode(),
			Priority:    priorityInventory,
		})
	}
	return results, nil
}

type userAdapter struct {
	source UserSource
}

func (a *userAdapter) Category() string  { return CategoryUsers }
func (a *userAdapter) Operation() string { return "users" }
func (a *userAdapter) TTL() time.Duration {
	return cache.TTLMedium
}

func (a *userAdapter) Search(query string) ([]*SearchResult, error) {
	users, err := a.source.GetAllUsers(1, sourcePageSize)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	var results []*SearchResult
	for _, user := range users {
		fields := []string{
			user.Username, user.FullName, user.Email,
			user.Department, user.Position, user.Role,
		}
		if !matchesAny(fields, term) {
			continue
		}

		title := user.FullName
		if title == "" {
			title = user.Username
		}
		description := user.Position
		if user.Department != "" {
			if description != "" {
				description += " • "
			}
			description += user.Department
		}

		results = append(results, &SearchResult{
			Id:          fmt.Sprintf("user_%d", user.Id),
			Title:       title,
			Description: description,
			Category:    CategoryUsers,
			Icon:        "👨‍⚕️",
			Url:         "/admin-management",
			Priority:    priorityUsers,
		})
	}
	return results, nil
}

type archiveAdapter struct {
	source ArchiveSource
}

func (a *archiveAdapter) Category() string  { return CategoryArchives }
func (a *archiveAdapter) Operation() string { return "archives" }
func (a *archiveAdapter) TTL() time.Duration {
	return cache.TTLMedium
}

func (a *archiveAdapter) Search(query string) ([]*SearchResult, error) {
	items, err := a.source.GetArchivedItems()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	var results []*SearchResult
	for _, item := range items {
		fields := []string{item.Name, item.Category, item.Department}
		if !matchesAny(fields, term) {
			continue
		}

		description := "Archived"
		if !item.ArchivedAt.IsZero() {
			description = "Archived " + item.ArchivedAt.Format("Jan 2, 2006")
		}
		if item.Department != "" {
			description += " • " + item.Department
		}

		results = append(results, &SearchResult{
			Id:          fmt.Sprintf("archive_inv_%d", item.Id),
			Title:       item.Name,
			Description: description,
			Category:    CategoryArchives,
			Icon:        "🗄️",
			Url:         fmt.Sprintf("/archives?highlightId=inv_%d", item.Id),
			Priority:    priorityArchives,
		})
	}
	return results, nil
}

type logAdapter struct {
	source LogSource
}

func (a *logAdapter) Category() string  { return CategoryActivityLogs }
func (a *logAdapter) Operation() string { return "logs" }
func (a *logAdapter) TTL() time.Duration {
	return cache.TTLShort
}

func (a *logAdapter) Search(query string) ([]*SearchResult, error) {
	logs, err := a.source.GetLogs()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	var matched []LogRecord
	for _, entry := range logs {
		fields := []string{entry.Action, entry.Description, entry.Category, entry.Username}
		if matchesAny(fields, term) {
			matched = append(matched, entry)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	if len(matched) > maxLogResults {
		matched = matched[:maxLogResults]
	}

	results := make([]*SearchResult, 0, len(matched))
	for _, entry := range matched {
		description := entry.Description
		if entry.Username != "" {
			if description != "" {
				description += " • "
			}
			description += "by " + entry.Username
		}

		results = append(results, &SearchResult{
			Id:          fmt.Sprintf("log_%d", entry.Id),
			Title:       entry.Action,
			Description: description,
			Category:    CategoryActivityLogs,
			Icon:        severityIcon(entry.Severity),
			Url:         fmt.Sprintf("/logs?highlightId=%d", entry.Id),
			Priority:    priorityLogs,
		})
	}
	return results, nil
}
