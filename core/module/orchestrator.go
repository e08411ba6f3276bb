package module

// CoreModuleProvider supplies the framework-level modules
type CoreModuleProvider interface {
	GetCoreModules(deps Dependencies) map[string]Module
}

// AppModuleProvider supplies the application-level modules
type AppModuleProvider interface {
	GetAppModules(deps Dependencies) map[string]Module
}

// Orchestrator initializes modules obtained from a provider
type Orchestrator struct {
	initializer *Initializer
}

// NewOrchestrator creates an orchestrator around the given initializer
func NewOrchestrator(initializer *Initializer) *Orchestrator {
	return &Orchestrator{initializer: initializer}
}

// InitializeCore runs the module lifecycle over the core provider's modules
func (o *Orchestrator) InitializeCore(provider CoreModuleProvider, deps Dependencies) []Module {
	modules := provider.GetCoreModules(deps)
	if len(modules) == 0 {
		return nil
	}
	return o.initializer.Initialize(modules, deps)
}

// InitializeApp runs the module lifecycle over the app provider's modules
func (o *Orchestrator) InitializeApp(provider AppModuleProvider, deps Dependencies) []Module {
	modules := provider.GetAppModules(deps)
	if len(modules) == 0 {
		return nil
	}
	return o.initializer.Initialize(modules, deps)
}
