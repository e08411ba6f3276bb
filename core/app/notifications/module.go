package notifications

import (
	"meditrack/core/emitter"
	"meditrack/core/logger"
	"meditrack/core/module"
	"meditrack/core/websocket"
)

// Module relays domain events to connected websocket clients
type Module struct {
	module.DefaultModule
	Emitter *emitter.Emitter
	Hub     *websocket.Hub
	Logger  logger.Logger
}

// Events forwarded to clients as they happen
var broadcastEvents = []string{
	"inventory.create",
	"inventory.update",
	"inventory.delete",
	"inventory.archive",
	"inventory.restore",
	"inventory.low_stock",
	"users.create",
	"users.update",
	"users.delete",
	"patients.create",
	"consultations.create",
}

// NewNotificationsModule creates the notifications module
func NewNotificationsModule(deps module.Dependencies) module.Module {
	return &Module{
		Emitter: deps.Emitter,
		Hub:     deps.Hub,
		Logger:  deps.Logger,
	}
}

func (m *Module) Init() error {
	if m.Hub == nil {
		m.Logger.Info("websocket hub disabled, notifications will not be broadcast")
		return nil
	}
	for _, event := range broadcastEvents {
		event := event
		m.Emitter.On(event, func(data any) {
			m.Hub.Broadcast(event, data)
		})
	}
	return nil
}
