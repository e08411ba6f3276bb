package archives

import (
	"meditrack/app/inventory"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
)

type Module struct {
	module.DefaultModule
	Service    *ArchiveService
	Controller *ArchiveController
	Logger     logger.Logger
}

// NewArchivesModule creates the archives module over the inventory service
func NewArchivesModule(deps module.Dependencies, inventoryService *inventory.InventoryService) module.Module {
	service := NewArchiveService(inventoryService, deps.Logger)
	controller := NewArchiveController(service, deps.Logger)

	return &Module{
		Service:    service,
		Controller: controller,
		Logger:     deps.Logger,
	}
}

func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}
