package activities

import (
	"gorm.io/gorm"

	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *ActivityService
	Controller *ActivityController
	Logger     logger.Logger
}

// NewActivitiesModule creates the activities module
func NewActivitiesModule(deps module.Dependencies) module.Module {
	service := NewActivityService(deps.DB, deps.Logger)
	controller := NewActivityController(service, deps.Logger)

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
	return m.DB.AutoMigrate(&Activity{})
}

func (m *Module) GetModels() []any {
	return []any{&Activity{}}
}
