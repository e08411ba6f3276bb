package patients

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
	Service    *PatientService
	Controller *PatientController
	Logger     logger.Logger
}

// NewPatientsModule creates the patients module
func NewPatientsModule(deps module.Dependencies) module.Module {
	service := NewPatientService(deps.DB, deps.Emitter, deps.Logger)
	controller := NewPatientController(service, deps.Logger)

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
	return m.DB.AutoMigrate(&models.Patient{}, &models.MedicalRecord{})
}

func (m *Module) GetModels() []any {
	return []any{&models.Patient{}, &models.MedicalRecord{}}
}
