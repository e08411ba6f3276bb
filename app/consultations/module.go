package consultations

import (
	"gorm.io/gorm"

	"meditrack/app/models"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *ConsultationService
	Controller *ConsultationController
	Logger     logger.Logger
}

// NewConsultationsModule creates the consultations module
func NewConsultationsModule(deps module.Dependencies) module.Module {
	service := NewConsultationService(deps.DB, deps.Emitter, deps.Logger)
	controller := NewConsultationController(service, deps.Logger)

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
	return m.DB.AutoMigrate(&models.Consultation{})
}

func (m *Module) GetModels() []any {
	return []any{&models.Consultation{}}
}
