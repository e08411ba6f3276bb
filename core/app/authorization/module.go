package authorization

import (
	"errors"

	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "Admin"
	RoleDentist = "Dentist"
	RoleNurse   = "Nurse"
	RoleStaff   = "Staff"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *AuthorizationService
	Controller *AuthorizationController
	Logger     logger.Logger
}

// NewAuthorizationModule creates the authorization module
func NewAuthorizationModule(deps module.Dependencies) module.Module {
	service := NewAuthorizationService(deps.DB)
	controller := NewAuthorizationController(service, deps.Logger)

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
	if err := m.DB.AutoMigrate(&Role{}, &Permission{}, &RolePermission{}); err != nil {
		return err
	}
	return m.seedRoles()
}

func (m *Module) GetModels() []any {
	return []any{&Role{}, &Permission{}, &RolePermission{}}
}

func (m *Module) seedRoles() error {
	roles := []Role{
		{Name: RoleAdmin, Description: "Full system access", IsSystem: true},
		{Name: RoleDentist, Description: "Clinical staff with records access", IsSystem: true},
		{Name: RoleNurse, Description: "Clinical staff with records access", IsSystem: true},
		{Name: RoleStaff, Description: "General staff access", IsSystem: true},
	}
	for _, role := range roles {
		var existing Role
		err := m.DB.Where("name = ?", role.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := m.DB.Create(&role).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}
