package search

import (
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
)

// Sources bundles the entity providers the search engine queries.
// Nil sources are skipped.
type Sources struct {
	Inventory InventorySource
	Users     UserSource
	Archives  ArchiveSource
	Logs      LogSource
}

// Events that invalidate cached search responses
var invalidationEvents = []string{
	"inventory.create",
	"inventory.update",
	"inventory.delete",
	"inventory.archive",
	"inventory.restore",
	"users.create",
	"users.update",
	"users.delete",
}

type Module struct {
	module.DefaultModule
	Service    *SearchService
	Controller *SearchController
	Logger     logger.Logger
	deps       module.Dependencies
}

// NewSearchModule creates the search module over the given sources
func NewSearchModule(deps module.Dependencies, sources Sources) module.Module {
	registry := NewRegistry()
	register := func(adapter Adapter) {
		if err := registry.Register(adapter); err != nil {
			deps.Logger.Error("search adapter registration failed",
				logger.String("category", adapter.Category()),
				logger.String("error", err.Error()))
		}
	}
	if sources.Inventory != nil {
		register(&inventoryAdapter{source: sources.Inventory})
	}
	if sources.Archives != nil {
		register(&archiveAdapter{source: sources.Archives})
	}
	if sources.Logs != nil {
		register(&logAdapter{source: sources.Logs})
	}
	if sources.Users != nil {
		register(&userAdapter{source: sources.Users})
	}

	service := NewSearchService(registry, deps.Cache, deps.Logger)
	controller := NewSearchController(service, deps.Logger)

	return &Module{
		Service:    service,
		Controller: controller,
		Logger:     deps.Logger,
		deps:       deps,
	}
}

func (m *Module) Init() error {
	for _, event := range invalidationEvents {
		m.deps.Emitter.On(event, func(data any) {
			m.Service.ClearCache()
		})
	}
	return nil
}

func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}
