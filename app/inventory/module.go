package inventory

import (
	"errors"

	"gorm.io/gorm"

	"meditrack/app/models"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *InventoryService
	Controller *InventoryController
	Logger     logger.Logger
}

// NewInventoryModule creates the inventory module
func NewInventoryModule(deps module.Dependencies) module.Module {
	service := NewInventoryService(deps.DB, deps.Emitter, deps.Logger)
	controller := NewInventoryController(service, deps.Logger)

	return &Module{
		DB:         deps.DB,
		Service:    service,
		Controller: controller,
		Logger:     deps.Logger,
	}
}

func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}

func (m *Module) Migrate() error {
	if err := m.DB.AutoMigrate(&models.InventoryItem{}, &models.InventoryClassification{}); err != nil {
		return err
	}
	return m.seedClassifications()
}

func (m *Module) GetModels() []any {
	return []any{&models.InventoryItem{}, &models.InventoryClassification{}}
}

func (m *Module) seedClassifications() error {
	for _, name := range []string{"Medicines", "Supplies", "Equipment"} {
		var existing models.InventoryClassification
		err := m.DB.Where("name = ?", name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := m.DB.Create(&models.InventoryClassification{Name: name}).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
