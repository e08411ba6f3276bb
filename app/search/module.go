package search

import (
	"meditrack/app/inventory"
	"meditrack/core/app/activities"
	"meditrack/core/app/search"
	"meditrack/core/app/users"
	"meditrack/core/module"
)

// NewSearchModule wires the application's entity services into the
// universal search engine.
func NewSearchModule(deps module.Dependencies, inventoryService *inventory.InventoryService) module.Module {
	sources := search.Sources{
		Inventory: inventoryService,
		Archives:  inventoryService,
		Users:     &userSource{service: users.NewUserService(deps.DB, deps.Emitter, deps.Logger)},
		Logs:      &logSource{service: activities.NewActivityService(deps.DB, deps.Logger)},
	}
	return search.NewSearchModule(deps, sources)
}
