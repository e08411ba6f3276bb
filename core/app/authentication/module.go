package authentication

import (
	"meditrack/core/app/users"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/router"
)

type Module struct {
	module.DefaultModule
	Service    *AuthService
	Controller *AuthController
	Logger     logger.Logger
	authGroup  *router.RouterGroup
}

// NewAuthenticationModule creates the authentication module.
// Routes are mounted on the public auth group, not the protected API group.
func NewAuthenticationModule(deps module.Dependencies, userService *users.UserService, authGroup *router.RouterGroup) module.Module {
	service := NewAuthService(userService, deps.Config.JWTSecret, deps.Logger)
	controller := NewAuthController(service, deps.Logger)

	return &Module{
		Service:    service,
		Controller: controller,
		Logger:     deps.Logger,
		authGroup:  authGroup,
	}
}

func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(m.authGroup)
}
