package search

import (
	"sort"
	"strings"
	"sync"

	"meditrack/core/cache"
	"meditrack/core/logger"
)

const cacheNamespace = "search"

// SearchService aggregates results across all registered adapters
type SearchService struct {
	Registry *Registry
	Cache    *cache.Cache
	Logger   logger.Logger
}

func NewSearchService(registry *Registry, cacheStore *cache.Cache, log logger.Logger) *SearchService {
	return &SearchService{
		Registry: registry,
		Cache:    cacheStore,
		Logger:   log,
	}
}

// Search runs a universal search. It never fails: adapter errors degrade
// to empty categories and the whole response falls back to quick actions
// for short queries.
func (s *SearchService) Search(query string) *UniversalSearchResponse {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < minQueryLength {
		return s.quickActionsOnly(query)
	}

	normalized := strings.ToLower(trimmed)
	params := map[string]string{"query": normalized}

	response, err := cache.Do(s.Cache, cacheNamespace, "universal", params, cache.TTLMedium,
		func() (*UniversalSearchResponse, error) {
			return s.aggregate(query), nil
		})
	if err != nil {
		// aggregate never errors; keep the fallback anyway
		return s.aggregate(query)
	}
	return response
}

// Suggestions returns completion candidates for a partial query
func (s *SearchService) Suggestions(query string) []string {
	return Suggest(query)
}

// ClearCache drops every cached search response
func (s *SearchService) ClearCache() {
	s.Cache.ClearByPattern(cacheNamespace + ":")
}

// quickActionsOnly answers queries below the minimum length
func (s *SearchService) quickActionsOnly(query string) *UniversalSearchResponse {
	actions := QuickActions(query)
	results := make([]*SearchResult, 0, len(actions))
	for _, action := range actions {
		results = append(results, action.toResult())
	}

	response := &UniversalSearchResponse{
		Query:        query,
		Categories:   []*CategoryGroup{},
		TotalResults: len(results),
	}
	if len(results) > 0 {
		response.Categories = append(response.Categories, &CategoryGroup{
			Category: CategoryQuickActions,
			Results:  results,
			Total:    len(results),
		})
	}
	return response
}

// aggregate fans the query out to every adapter and assembles the
// ranked, capped category groups.
func (s *SearchService) aggregate(query string) *UniversalSearchResponse {
	adapters := s.Registry.Adapters()
	resultSets := make([][]*SearchResult, len(adapters))

	var wg sync.WaitGroup
	for i, adapter := range adapters {
		wg.Add(1)
		go func(i int, adapter Adapter) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					s.Logger.Error("search adapter panicked",
						logger.String("category", adapter.Category()),
						logger.Any("panic", r))
					resultSets[i] = nil
				}
			}()
			resultSets[i] = s.searchAdapter(adapter, query)
		}(i, adapter)
	}
	wg.Wait()

	response := &UniversalSearchResponse{
		Query:      query,
		Categories: []*CategoryGroup{},
	}

	actions := MatchQuickActions(query)
	if len(actions) > 0 {
		results := make([]*SearchResult, 0, len(actions))
		for _, action := range actions {
			results = append(results, action.toResult())
		}
		response.Categories = append(response.Categories, &CategoryGroup{
			Category: CategoryQuickActions,
			Results:  results,
			Total:    len(results),
		})
		response.TotalResults += len(results)
	}

	for i := range adapters {
		group := buildCategoryGroup(adapters[i].Category(), resultSets[i])
		if group == nil {
			continue
		}
		response.Categories = append(response.Categories, group)
		response.TotalResults += group.Total
	}

	sort.SliceStable(response.Categories, func(i, j int) bool {
		return s.Registry.CategoryRank(response.Categories[i].Category) <
			s.Registry.CategoryRank(response.Categories[j].Category)
	})

	response.Suggestions = Suggest(query)
	return response
}

// searchAdapter runs one adapter with caching and error isolation
func (s *SearchService) searchAdapter(adapter Adapter, query string) []*SearchResult {
	params := map[string]string{"query": strings.ToLower(strings.TrimSpace(query))}
	results, err := cache.Do(s.Cache, cacheNamespace, adapter.Operation(), params, adapter.TTL(), func() ([]*SearchResult, error) {
		return adapter.Search(query)
	})
	if err != nil {
		s.Logger.Warn("search adapter failed",
			logger.String("category", adapter.Category()),
			logger.String("error", err.Error()))
		return nil
	}
	return results
}

// buildCategoryGroup sorts by priority, records the untruncated total and
// caps the visible results. Empty categories are omitted.
func buildCategoryGroup(category string, results []*SearchResult) *CategoryGroup {
	if len(results) == 0 {
		return nil
	}

	sorted := make([]*SearchResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	total := len(sorted)
	if len(sorted) > maxResultsPerCategory {
		sorted = sorted[:maxResultsPerCategory]
	}

	return &CategoryGroup{
		Category: category,
		Results:  sorted,
		Total:    total,
	}
}
