package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitInvokesAllListeners(t *testing.T) {
	e := New()
	var got []string

	e.On("inventory.create", func(data any) { got = append(got, "first") })
	e.On("inventory.create", func(data any) { got = append(got, "second") })

	e.Emit("inventory.create", nil)
	assert.Equal(t, []string{"first", "second"}, got)
}

func TestEmitPassesPayload(t *testing.T) {
	e := New()
	var received any

	e.On("users.update", func(data any) { received = data })
	e.Emit("users.update", 42)
	assert.Equal(t, 42, received)
}

func TestEmitUnknownEventIsNoop(t *testing.T) {
	e := New()
	assert.NotPanics(t, func() { e.Emit("never.registered", nil) })
}

func TestOffRemovesListeners(t *testing.T) {
	e := New()
	calls := 0

	e.On("inventory.delete", func(data any) { calls++ })
	e.Off("inventory.delete")
	e.Emit("inventory.delete", nil)
	assert.Equal(t, 0, calls)
}
