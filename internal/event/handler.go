package event

import (
	"time"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/logger"
)

// Handler is one game state (menu, play, pause...). Update and Draw are the
// only methods a state has to write itself; embed DefaultHandler to get the
// input callbacks.
type Handler interface {
	// Update advances game logic by dt and returns exactly one Transition
	// describing what the stack should do next. An error aborts the loop.
	Update(ctx *Context, assets *assets.Table, dt time.Duration) (Transition, error)

	// Draw renders the state. It should not mutate game logic.
	Draw(ctx *Context, assets *assets.Table) error

	MouseButtonDown(button MouseButton, x, y int32)
	MouseButtonUp(button MouseButton, x, y int32)
	MouseMotion(state MouseState, x, y, xrel, yrel int32)
	MouseWheel(x, y int32)

	// KeyDown never sees KeyEscape; the loop consumes it.
	KeyDown(key Keycode, mod Mod, repeat bool)
	KeyUp(key Keycode, mod Mod, repeat bool)

	ControllerButtonDown(button Button, instanceID int32)
	ControllerButtonUp(button Button, instanceID int32)
	ControllerAxis(axis Axis, value int16, instanceID int32)

	Focus(gained bool)

	// QuitRequested is called on a platform quit request. Returning true
	// cancels the quit and keeps the loop running.
	QuitRequested() bool
}

// Releaser is implemented by handlers that hold resources. The stack calls
// Release when the handler is popped, swapped out or cleared.
type Releaser interface {
	Release()
}

// DefaultHandler implements every optional Handler callback. All input is
// ignored and quit requests are allowed.
type DefaultHandler struct{}

func (DefaultHandler) MouseButtonDown(MouseButton, int32, int32) {}
func (DefaultHandler) MouseButtonUp(MouseButton, int32, int32) {}
func (DefaultHandler) MouseMotion(MouseState, int32, int32, int32, int32) {}
func (DefaultHandler) MouseWheel(int32, int32) {}
func (DefaultHandler) KeyDown(Keycode, Mod, bool) {}
func (DefaultHandler) KeyUp(Keycode, Mod, bool) {}
func (DefaultHandler) ControllerButtonDown(Button, int32) {}
func (DefaultHandler) ControllerButtonUp(Button, int32) {}
func (DefaultHandler) ControllerAxis(Axis, int16, int32) {}
func (DefaultHandler) Focus(bool) {}

// QuitRequested logs and lets the quit go through.
func (DefaultHandler) QuitRequested() bool {
	logger.Info("quitting game")
	return false
}
