package search

import "time"

// Category labels, in the order they appear in responses
const (
	CategoryQuickActions = "Quick Actions"
	CategoryInventory    = "Inventory"
	CategoryArchives     = "Archives"
	CategoryActivityLogs = "Activity Logs"
	CategoryUsers        = "Users"
)

// Base priorities per entity category; quick actions carry their own
const (
	priorityInventory = 45
	priorityUsers     = 40
	priorityArchives  = 35
	priorityLogs      = 30
)

const (
	minQueryLength        = 2
	maxResultsPerCategory = 5
	maxQuickActionResults = 3
	maxEmptyQuickActions  = 6
	maxLogResults         = 10
	maxSuggestions        = 5
	sourcePageSize        = 50
)

// SearchResult is a single ranked hit
type SearchResult struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
	Icon        string `json:"icon,omitempty"`
	Url         string `json:"url,omitempty"`
	Priority    int    `json:"priority"`
}

// CategoryGroup holds the top hits for one category.
// Total is the untruncated match count.
type CategoryGroup struct {
	Category string          `json:"category"`
	Results  []*SearchResult `json:"results"`
	Total    int             `json:"total"`
}

// UniversalSearchResponse is the aggregated answer for one query
type UniversalSearchResponse struct {
	Query        string           `json:"query"`
	Categories   []*CategoryGroup `json:"categories"`
	TotalResults int              `json:"total_results"`
	Suggestions  []string         `json:"suggestions,omitempty"`
}

// InventoryRecord is the slice of an inventory item the search engine needs
type InventoryRecord struct {
	Id             uint
	Code           string
	Name           string
	BrandName      string
	Category       string
	Classification string
	Department     string
	StockQuantity  int
	Unit           string
	Status         string
}

// UserRecord is the slice of a user account the search engine needs
type UserRecord struct {
	Id         uint
	Username   string
	FullName   string
	Email      string
	Department string
	Position   string
	Role       string
}

// ArchiveRecord is the slice of an archived item the search engine needs
type ArchiveRecord struct {
	Id         uint
	Name       string
	Category   string
	Department string
	ArchivedAt time.Time
}

// LogRecord is the slice of an activity entry the search engine needs
type LogRecord struct {
	Id          uint
	Action      string
	Description string
	Category    string
	Severity    string
	Timestamp   time.Time
	Username    string
}

// InventorySource supplies inventory items to search over
type InventorySource interface {
	GetAllItems(page, pageSize int) ([]InventoryRecord, error)
}

// UserSource supplies user accounts to search over
type UserSource interface {
	GetAllUsers(page, pageSize int) ([]UserRecord, error)
}

// ArchiveSource supplies archived items to search over
type ArchiveSource interface {
	GetArchivedItems() ([]ArchiveRecord, error)
}

// LogSource supplies recent activity entries to search over
type LogSource interface {
	GetLogs() ([]LogRecord, error)
}
