package search

import (
	"fmt"
	"strings"

	"github.com/gertd/go-pluralize"
)

var pluralizer = pluralize.NewClient()

// DefaultCategoryName derives a display label for a custom adapter from
// its entity name, e.g. "medical_record" becomes "Medical Records".
func DefaultCategoryName(entity string) string {
	entity = strings.TrimSpace(entity)
	if entity == "" {
		return ""
	}
	words := strings.FieldsFunc(entity, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, word := range words {
		if i == len(words)-1 {
			word = pluralizer.Plural(word)
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// Registry holds the entity adapters in response order
type Registry struct {
	adapters []Adapter
	order    map[string]int
}

// NewRegistry creates an empty adapter registry
func NewRegistry() *Registry {
	return &Registry{order: make(map[string]int)}
}

// namedAdapter carries a derived label for adapters that do not
// declare their own category
type namedAdapter struct {
	Adapter
	category string
}

func (a *namedAdapter) Category() string { return a.category }

// Register appends an adapter. Category order in responses follows
// registration order, after quick actions. An adapter without a
// category gets a label derived from its operation name.
func (r *Registry) Register(adapter Adapter) error {
	if adapter == nil {
		return fmt.Errorf("adapter must not be nil")
	}

	category := adapter.Category()
	if category == "" {
		category = DefaultCategoryName(adapter.Operation())
		if category == "" {
			return fmt.Errorf("adapter must declare a category or operation")
		}
		adapter = &namedAdapter{Adapter: adapter, category: category}
	}

	if _, exists := r.order[category]; exists {
		return fmt.Errorf("adapter already registered for category %q", category)
	}
	r.order[category] = len(r.adapters)
	r.adapters = append(r.adapters, adapter)
	return nil
}

// Adapters returns the registered adapters in registration order
func (r *Registry) Adapters() []Adapter {
	return r.adapters
}

// CategoryRank returns the position of a category in the response order.
// Quick actions always come first; unknown categories sort last.
func (r *Registry) CategoryRank(category string) int {
	if category == CategoryQuickActions {
		return -1
	}
	if rank, ok := r.order[category]; ok {
		return rank
	}
	return len(r.adapters)
}
