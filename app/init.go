package app

import (
	"meditrack/app/archives"
	"meditrack/app/audit"
	"meditrack/app/consultations"
	"meditrack/app/inventory"
	"meditrack/app/patients"
	"meditrack/app/search"
	"meditrack/core/app/activities"
	"meditrack/core/module"
)

// AppProvider supplies the application-level modules
type AppProvider struct{}

// GetAppModules builds the app module set. The inventory service is
// shared with the archives and search modules.
func (p *AppProvider) GetAppModules(deps module.Dependencies) map[string]module.Module {
	inventoryModule := inventory.NewInventoryModule(deps).(*inventory.Module)
	activityService := activities.NewActivityService(deps.DB, deps.Logger)

	return map[string]module.Module{
		"inventory":     inventoryModule,
		"archives":      archives.NewArchivesModule(deps, inventoryModule.Service),
		"patients":      patients.NewPatientsModule(deps),
		"consultations": consultations.NewConsultationsModule(deps),
		"search":        search.NewSearchModule(deps, inventoryModule.Service),
		"audit":         audit.NewAuditModule(deps, activityService),
	}
}
