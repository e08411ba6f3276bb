package users

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"meditrack/core/app/authorization"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *UserService
	Controller *UserController
	Logger     logger.Logger
}

// NewUsersModule creates the users module
func NewUsersModule(deps module.Dependencies) module.Module {
	service := NewUserService(deps.DB, deps.Emitter, deps.Logger)
	controller := NewUserController(service, deps.Logger)

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
	if err := m.DB.AutoMigrate(&User{}); err != nil {
		return err
	}
	return m.seedAdmin()
}

func (m *Module) GetModels() []any {
	return []any{&User{}}
}

// seedAdmin creates the default admin account on first boot
func (m *Module) seedAdmin() error {
	var count int64
	if err := m.DB.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var role authorization.Role
	err := m.DB.Where("name = ?", authorization.RoleAdmin).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		FirstName: "System",
		LastName:  "Administrator",
		Username:  "admin",
		Password:  string(hashed),
		RoleId:    role.Id,
		Position:  "Administrator",
	}
	if err := m.DB.Create(&admin).Error; err != nil {
		return err
	}
	m.Logger.Warn("seeded default admin account, change its password",
		logger.String("username", admin.Username))
	return nil
}
