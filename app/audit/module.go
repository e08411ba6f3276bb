package audit

import (
	"fmt"

	"meditrack/app/models"
	"meditrack/core/app/activities"
	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/module"
)

// Module turns domain events into activity log entries
type Module struct {
	module.DefaultModule
	Emitter  *emitter.Emitter
	Activity *activities.ActivityService
	Logger   logger.Logger
}

// NewAuditModule creates the audit module over the activity service
func NewAuditModule(deps module.Dependencies, activityService *activities.ActivityService) module.Module {
	return &Module{
		Emitter:  deps.Emitter,
		Activity: activityService,
		Logger:   deps.Logger,
	}
}

func (m *Module) Init() error {
	m.onInventory("inventory.create", "Created inventory item", activities.SeverityInfo)
	m.onInventory("inventory.update", "Updated inventory item", activities.SeverityInfo)
	m.onInventory("inventory.delete", "Deleted inventory item", activities.SeverityWarning)
	m.onInventory("inventory.archive", "Archived inventory item", activities.SeverityInfo)
	m.onInventory("inventory.restore", "Restored inventory item", activities.SeverityInfo)
	m.onInventory("inventory.low_stock", "Inventory item is low on stock", activities.SeverityWarning)

	m.Emitter.On("patients.create", func(data any) {
		patient, ok := data.(*models.Patient)
		if !ok {
			return
		}
		m.Activity.Log(activities.LogEntry{
			Action:      "patients.create",
			Description: fmt.Sprintf("Registered patient %s", patient.FullName()),
			Category:    "patients",
			EntityType:  "patient",
			EntityId:    patient.Id,
		})
	})

	m.Emitter.On("consultations.create", func(data any) {
		consultation, ok := data.(*models.Consultation)
		if !ok {
			return
		}
		m.Activity.Log(activities.LogEntry{
			Action:      "consultations.create",
			Description: fmt.Sprintf("Recorded consultation #%d", consultation.Id),
			Category:    "consultations",
			EntityType:  "consultation",
			EntityId:    consultation.Id,
		})
	})

	return nil
}

func (m *Module) onInventory(event, description, severity string) {
	m.Emitter.On(event, func(data any) {
		item, ok := data.(*models.InventoryItem)
		if !ok {
			return
		}
		m.Activity.Log(activities.LogEntry{
			Action:      event,
			Description: fmt.Sprintf("%s: %s", description, item.DisplayName()),
			Category:    "inventory",
			Severity:    severity,
			EntityType:  "inventory_item",
			EntityId:    item.Id,
		})
	})
}
