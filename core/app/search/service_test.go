package search

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meditrack/core/cache"
	"meditrack/core/logger"
)

type fakeInventory struct {
	items []InventoryRecord
	err   error
	calls int
}

func (f *fakeInventory) GetAllItems(page, pageSize int) ([]InventoryRecord, error) {
	f.calls++
	return f.items, f.err
}

type fakeUsers struct {
	users []UserRecord
	err   error
}

func (f *fakeUsers) GetAllUsers(page, pageSize int) ([]UserRecord, error) {
	return f.users, f.err
}

type fakeArchives struct {
	items []ArchiveRecord
	err   error
}

func (f *fakeArchives) GetArchivedItems() ([]ArchiveRecord, error) {
	return f.items, f.err
}

type fakeLogs struct {
	logs []LogRecord
	err  error
}

func (f *fakeLogs) GetLogs() ([]LogRecord, error) {
	return f.logs, f.err
}

func newTestService(t *testing.T, sources Sources) *SearchService {
	t.Helper()
	registry := NewRegistry()
	if sources.Inventory != nil {
		require.NoError(t, registry.Register(&inventoryAdapter{source: sources.Inventory}))
	}
	if sources.Archives != nil {
		require.NoError(t, registry.Register(&archiveAdapter{source: sources.Archives}))
	}
	if sources.Logs != nil {
		require.NoError(t, registry.Register(&logAdapter{source: sources.Logs}))
	}
	if sources.Users != nil {
		require.NoError(t, registry.Register(&userAdapter{source: sources.Users}))
	}
	return NewSearchService(registry, cache.New(logger.NewNopLogger()), logger.NewNopLogger())
}

func findCategory(t *testing.T, response *UniversalSearchResponse, name string) *CategoryGroup {
	t.Helper()
	for _, group := range response.Categories {
		if group.Category == name {
			return group
		}
	}
	return nil
}

func TestEmptyQueryReturnsTopQuickActions(t *testing.T) {
	service := newTestService(t, Sources{})

	response := service.Search("")
	require.Len(t, response.Categories, 1)

	group := response.Categories[0]
	assert.Equal(t, CategoryQuickActions, group.Category)
	assert.Len(t, group.Results, 6)
	assert.Equal(t, "nav-inventory", group.Results[0].Id)
	assert.Equal(t, 90, group.Results[0].Priority)
}

func TestShortQueryMatchesTitleAndDescriptionOnly(t *testing.T) {
	service := newTestService(t, Sources{})

	// "+" is only a keyword shortcut; the short-query path ignores keywords
	response := service.Search("+")
	assert.Empty(t, response.Categories)
	assert.Equal(t, 0, response.TotalResults)
}

func TestKeywordShortcutsMatchInFullSearch(t *testing.T) {
	service := newTestService(t, Sources{})

	response := service.Search("insert")
	group := findCategory(t, response, CategoryQuickActions)
	require.NotNil(t, group)
	require.Len(t, group.Results, 1)
	assert.Equal(t, "action-add-inventory", group.Results[0].Id)
}

func TestQueryBelowMinimumSkipsAdapters(t *testing.T) {
	inventory := &fakeInventory{items: []InventoryRecord{{Id: 1, Name: "Gauze"}}}
	service := newTestService(t, Sources{Inventory: inventory})

	service.Search("g")
	assert.Equal(t, 0, inventory.calls, "entity sources should not run for short queries")
}

func TestCategoryCapAndUntruncatedTotal(t *testing.T) {
	inventory := &fakeInventory{}
	for i := 1; i <= 7; i++ {
		inventory.items = append(inventory.items, InventoryRecord{
			Id:             uint(i),
			Code:           fmt.Sprintf("GZ-%03d", i),
			Name:           fmt.Sprintf("Gauze Pad %d", i),
			Classification: "Supplies",
			Department:     "medical",
			StockQuantity:  10,
			Unit:           "pcs",
		})
	}
	service := newTestService(t, Sources{Inventory: inventory})

	response := service.Search("gauze")
	group := findCategory(t, response, CategoryInventory)
	require.NotNil(t, group)

	assert.Len(t, group.Results, 5)
	assert.Equal(t, 7, group.Total)
	assert.Equal(t, "inventory_1", group.Results[0].Id)
	assert.Contains(t, group.Results[0].Url, "itemId=1")
	assert.Contains(t, group.Results[0].Url, "department=medical")
}

func TestCategoryOrderFollowsRegistration(t *testing.T) {
	service := newTestService(t, Sources{
		Inventory: &fakeInventory{items: []InventoryRecord{{Id: 1, Name: "Dental Floss"}}},
		Archives:  &fakeArchives{items: []ArchiveRecord{{Id: 2, Name: "Dental Mirror"}}},
		Logs:      &fakeLogs{logs: []LogRecord{{Id: 3, Action: "dental cleanup", Timestamp: time.Now()}}},
		Users:     &fakeUsers{users: []UserRecord{{Id: 4, FullName: "Dr. Dental", Username: "dental"}}},
	})

	response := service.Search("dental")
	require.Len(t, response.Categories, 4)

	assert.Equal(t, CategoryInventory, response.Categories[0].Category)
	assert.Equal(t, CategoryArchives, response.Categories[1].Category)
	assert.Equal(t, CategoryActivityLogs, response.Categories[2].Category)
	assert.Equal(t, CategoryUsers, response.Categories[3].Category)
}

func TestEmptyCategoriesAreOmitted(t *testing.T) {
	service := newTestService(t, Sources{
		Inventory: &fakeInventory{items: []InventoryRecord{{Id: 1, Name: "Gauze"}}},
		Users:     &fakeUsers{users: []UserRecord{{Id: 2, Username: "nurse1", FullName: "Nina Cruz"}}},
	})

	response := service.Search("gauze")
	require.Len(t, response.Categories, 1)
	assert.Equal(t, CategoryInventory, response.Categories[0].Category)
}

func TestFailingSourceDegradesToEmptyCategory(t *testing.T) {
	service := newTestService(t, Sources{
		Inventory: &fakeInventory{items: []InventoryRecord{{Id: 1, Name: "Syringe"}}},
		Users:     &fakeUsers{err: errors.New("connection refused")},
	})

	response := service.Search("syringe")
	assert.NotNil(t, findCategory(t, response, CategoryInventory))
	assert.Nil(t, findCategory(t, response, CategoryUsers))
	assert.Equal(t, 1, response.TotalResults)
}

func TestLogResultsSortedByRecencyAndCapped(t *testing.T) {
	logs := &fakeLogs{}
	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 12; i++ {
		logs.logs = append(logs.logs, LogRecord{
			Id:        uint(i),
			Action:    "stock adjustment",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
	}
	service := newTestService(t, Sources{Logs: logs})

	response := service.Search("stock adjustment")
	group := findCategory(t, response, CategoryActivityLogs)
	require.NotNil(t, group)

	assert.Equal(t, 10, group.Total, "log matches are capped before ranking")
	assert.Len(t, group.Results, 5)
	assert.Equal(t, "log_12", group.Results[0].Id, "newest entry ranks first")
	assert.Equal(t, "log_11", group.Results[1].Id)
}

func TestQuickActionsCappedInFullSearch(t *testing.T) {
	service := newTestService(t, Sources{})

	response := service.Search("go to")
	group := findCategory(t, response, CategoryQuickActions)
	require.NotNil(t, group)

	assert.Len(t, group.Results, 3)
	assert.Equal(t, "nav-inventory", group.Results[0].Id)
}

func TestRepeatedQueryServedFromCache(t *testing.T) {
	inventory := &fakeInventory{items: []InventoryRecord{{Id: 1, Name: "Gauze"}}}
	service := newTestService(t, Sources{Inventory: inventory})

	service.Search("gauze")
	service.Search("gauze")
	assert.Equal(t, 1, inventory.calls)

	service.ClearCache()
	service.Search("gauze")
	assert.Equal(t, 2, inventory.calls)
}

func TestFullSearchAttachesSuggestions(t *testing.T) {
	service := newTestService(t, Sources{
		Inventory: &fakeInventory{},
	})

	response := service.Search("pas")
	assert.Equal(t, 0, response.TotalResults)
	assert.Contains(t, response.Suggestions, "past")
}

func TestEntityMatchIsQuerySubstringOnly(t *testing.T) {
	service := newTestService(t, Sources{
		Inventory: &fakeInventory{items: []InventoryRecord{{
			Id: 1, Name: "Gauze Pads", Department: "Staff Room",
		}}},
	})

	// shortcut synonyms drive quick actions and suggestions, never
	// entity matching: "user" must not match a "Staff Room" field
	response := service.Search("user")
	assert.Nil(t, findCategory(t, response, CategoryInventory))

	response = service.Search("staff")
	group := findCategory(t, response, CategoryInventory)
	require.NotNil(t, group)
	assert.Equal(t, "inventory_1", group.Results[0].Id)
}

func TestResponseEchoesOriginalQuery(t *testing.T) {
	service := newTestService(t, Sources{
		Inventory: &fakeInventory{items: []InventoryRecord{{Id: 1, Name: "Gauze"}}},
	})

	response := service.Search("  Gauze  ")
	assert.Equal(t, "  Gauze  ", response.Query)
	require.NotNil(t, findCategory(t, response, CategoryInventory))

	short := service.Search(" a ")
	assert.Equal(t, " a ", short.Query)
}

func TestResultIdsAreStableAndUnique(t *testing.T) {
	service := newTestService(t, Sources{
		Inventory: &fakeInventory{items: []InventoryRecord{{Id: 7, Name: "Dental Kit"}}},
		Archives:  &fakeArchives{items: []ArchiveRecord{{Id: 7, Name: "Dental Chair"}}},
		Logs:      &fakeLogs{logs: []LogRecord{{Id: 7, Action: "dental update", Timestamp: time.Now()}}},
		Users:     &fakeUsers{users: []UserRecord{{Id: 7, Username: "dental", FullName: "Dee Ental"}}},
	})

	response := service.Search("dental")
	seen := map[string]bool{}
	for _, group := range response.Categories {
		for _, result := range group.Results {
			assert.False(t, seen[result.Id], "duplicate id %s", result.Id)
			seen[result.Id] = true
		}
	}
	assert.True(t, seen["inventory_7"])
	assert.True(t, seen["archive_inv_7"])
	assert.True(t, seen["log_7"])
	assert.True(t, seen["user_7"])
}

func TestSuggestPrefixAndCap(t *testing.T) {
	for _, query := range []string{"s", "a", "m", "in"} {
		suggestions := Suggest(query)
		assert.LessOrEqual(t, len(suggestions), maxSuggestions)
		for _, suggestion := range suggestions {
			assert.True(t, strings.HasPrefix(suggestion, query),
				"suggestion %q must start with %q", suggestion, query)
		}
	}
}

func TestSuggestFirstSeenOrder(t *testing.T) {
	expected := []string{"archive", "archives", "activity", "audit", "actions"}
	assert.Equal(t, expected, Suggest("a"))
}

func TestDefaultCategoryName(t *testing.T) {
	assert.Equal(t, "Medical Records", DefaultCategoryName("medical_record"))
	assert.Equal(t, "Patients", DefaultCategoryName("patient"))
	assert.Equal(t, "", DefaultCategoryName(""))
}

type uncategorizedAdapter struct{}

func (a *uncategorizedAdapter) Category() string   { return "" }
func (a *uncategorizedAdapter) Operation() string  { return "medical_record" }
func (a *uncategorizedAdapter) TTL() time.Duration { return cache.TTLMedium }
func (a *uncategorizedAdapter) Search(query string) ([]*SearchResult, error) {
	return nil, nil
}

func TestRegisterDerivesCategoryFromOperation(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&uncategorizedAdapter{}))
	assert.Equal(t, "Medical Records", registry.Adapters()[0].Category())
}

func TestRegisterRejectsDuplicateCategory(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&inventoryAdapter{source: &fakeInventory{}}))
	assert.Error(t, registry.Register(&inventoryAdapter{source: &fakeInventory{}}))
}

func TestCategoryRankFollowsRegistration(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(&inventoryAdapter{source: &fakeInventory{}}))
	require.NoError(t, registry.Register(&userAdapter{source: &fakeUsers{}}))

	assert.Equal(t, -1, registry.CategoryRank(CategoryQuickActions))
	assert.Less(t, registry.CategoryRank(CategoryInventory), registry.CategoryRank(CategoryUsers))
	assert.Equal(t, 2, registry.CategoryRank("Medical Records"))
}
