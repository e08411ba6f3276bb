package module

import (
	"fmt"
	"sort"
	"sync"

	"meditrack/core/cache"
	"meditrack/core/config"
	"meditrack/core/email"
	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/router"
	"meditrack/core/websocket"

	"gorm.io/gorm"
)

// Module is the interface every feature module implements
type Module interface {
	Routes(router *router.RouterGroup)
}

// Dependencies carries shared infrastructure into module constructors
type Dependencies struct {
	DB          *gorm.DB
	Router      *router.RouterGroup
	Logger      logger.Logger
	Emitter     *emitter.Emitter
	Cache       *cache.Cache
	EmailSender email.Sender
	Config      *config.Config
	Hub         *websocket.Hub
}

// DefaultModule provides no-op implementations for optional module hooks
type DefaultModule struct{}

func (DefaultModule) Routes(router *router.RouterGroup) {}
func (DefaultModule) Init() error                       { return nil }
func (DefaultModule) Migrate() error                    { return nil }

var (
	registryMu sync.Mutex
	registry   = make(map[string]Module)
)

// RegisterModule records a module under a unique name
func RegisterModule(name string, mod Module) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("module already registered: %s", name)
	}
	registry[name] = mod
	return nil
}

// GetModule returns a registered module by name
func GetModule(name string) (Module, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	mod, ok := registry[name]
	return mod, ok
}

// Initializer runs the init/migrate/routes lifecycle over a set of modules
type Initializer struct {
	logger logger.Logger
}

// NewInitializer creates a module initializer
func NewInitializer(log logger.Logger) *Initializer {
	return &Initializer{logger: log}
}

// Initialize registers and initializes each module, returning the ones that succeeded
func (i *Initializer) Initialize(modules map[string]Module, deps Dependencies) []Module {
	var initialized []Module

	// deterministic order keeps migrations and seeds stable
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mod := modules[name]
		if err := RegisterModule(name, mod); err != nil {
			i.logger.Error("Failed to register module",
				logger.String("module", name),
				logger.String("error", err.Error()))
			continue
		}

		if initModule, ok := mod.(interface{ Init() error }); ok {
			if err := initModule.Init(); err != nil {
				i.logger.Error("Failed to initialize module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if migrator, ok := mod.(interface{ Migrate() error }); ok {
			if err := migrator.Migrate(); err != nil {
				i.logger.Error("Failed to migrate module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if routeModule, ok := mod.(interface{ Routes(*router.RouterGroup) }); ok {
			routeModule.Routes(deps.Router)
		}

		initialized = append(initialized, mod)
	}

	return initialized
}
