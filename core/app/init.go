package app

import (
	"meditrack/core/app/activities"
	"meditrack/core/app/authentication"
	"meditrack/core/app/authorization"
	"meditrack/core/app/notifications"
	"meditrack/core/app/users"
	"meditrack/core/module"
	"meditrack/core/router"
)

// CoreProvider supplies the framework-level modules.
// AuthGroup is the public route group for login, mounted outside the
// protected API group.
type CoreProvider struct {
	AuthGroup *router.RouterGroup
}

// GetCoreModules builds the core module set
func (p *CoreProvider) GetCoreModules(deps module.Dependencies) map[string]module.Module {
	usersModule := users.NewUsersModule(deps).(*users.Module)

	return map[string]module.Module{
		"authorization":  authorization.NewAuthorizationModule(deps),
		"users":          usersModule,
		"authentication": authentication.NewAuthenticationModule(deps, usersModule.Service, p.AuthGroup),
		"activities":     activities.NewActivitiesModule(deps),
		"notifications":  notifications.NewNotificationsModule(deps),
	}
}
