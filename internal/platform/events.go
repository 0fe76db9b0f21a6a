package platform

import (
	"go.uber.org/zap"

	"github.com/Faultbox/gamestack/internal/event"
	"github.com/Faultbox/gamestack/internal/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// EventPump drains the SDL queue into event.Event values. It implements
// event.Source. It also keeps game controllers open so their events arrive
// tagged with an instance id.
type EventPump struct {
	events      []event.Event
	controllers map[sdl.JoystickID]*sdl.GameController
	log         *zap.Logger

	// OnResize, if set, is called when the drawable size changes. Resize
	// events are platform business and are not forwarded to states.
	OnResize func(width, height int)
}

// NewEventPump creates a pump and opens every controller already attached.
func NewEventPump() *EventPump {
	p := &EventPump{
		events:      make([]event.Event, 0, 32),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		log:         logger.Named("platform"),
	}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		p.openController(i)
	}
	return p
}

// Poll returns every pending event. The returned slice is reused by the
// next call.
func (p *EventPump) Poll() []event.Event {
	p.events = p.events[:0]

	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.ControllerDeviceEvent:
			p.handleDevice(ev)
			continue
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED && p.OnResize != nil {
				p.OnResize(int(ev.Data1), int(ev.Data2))
			}
		}

		if out, ok := translate(e); ok {
			p.events = append(p.events, out)
		}
	}

	return p.events
}

// Controllers returns the number of open game controllers.
func (p *EventPump) Controllers() int {
	return len(p.controllers)
}

// Close releases every open controller.
func (p *EventPump) Close() {
	for id, gc := range p.controllers {
		gc.Close()
		delete(p.controllers, id)
	}
}

func (p *EventPump) handleDevice(ev *sdl.ControllerDeviceEvent) {
	switch ev.Type {
	case sdl.CONTROLLERDEVICEADDED:
		// Which is a device index here, not an instance id.
		p.openController(int(ev.Which))
	case sdl.CONTROLLERDEVICEREMOVED:
		if gc, ok := p.controllers[ev.Which]; ok {
			gc.Close()
			delete(p.controllers, ev.Which)
			p.log.Info("controller removed", zap.Int32("instance", int32(ev.Which)))
		}
	}
}

func (p *EventPump) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		p.log.Warn("failed to open controller", zap.Int("index", index), zap.Error(sdl.GetError()))
		return
	}
	id := gc.Joystick().InstanceID()
	if _, ok := p.controllers[id]; ok {
		gc.Close()
		return
	}
	p.controllers[id] = gc
	p.log.Info("controller added",
		zap.Int32("instance", int32(id)),
		zap.String("name", gc.Name()),
	)
}

// translate maps one SDL event to an event.Event. ok is false for events
// states never see.
func translate(e sdl.Event) (out event.Event, ok bool) {
	switch ev := e.(type) {
	case *sdl.QuitEvent:
		return event.Event{Kind: event.KindQuit}, true

	case *sdl.KeyboardEvent:
		out = event.Event{
			Key:    event.Keycode(ev.Keysym.Sym),
			Mod:    event.Mod(ev.Keysym.Mod),
			Repeat: ev.Repeat != 0,
		}
		switch ev.Type {
		case sdl.KEYDOWN:
			out.Kind = event.KindKeyDown
		case sdl.KEYUP:
			out.Kind = event.KindKeyUp
		default:
			return out, false
		}
		return out, true

	case *sdl.MouseButtonEvent:
		out = event.Event{
			MouseButton: event.MouseButton(ev.Button),
			X:           ev.X,
			Y:           ev.Y,
		}
		switch ev.Type {
		case sdl.MOUSEBUTTONDOWN:
			out.Kind = event.KindMouseButtonDown
		case sdl.MOUSEBUTTONUP:
			out.Kind = event.KindMouseButtonUp
		default:
			return out, false
		}
		return out, true

	case *sdl.MouseMotionEvent:
		return event.Event{
			Kind:       event.KindMouseMotion,
			MouseState: event.MouseState(ev.State),
			X:          ev.X,
			Y:          ev.Y,
			XRel:       ev.XRel,
			YRel:       ev.YRel,
		}, true

	case *sdl.MouseWheelEvent:
		return event.Event{Kind: event.KindMouseWheel, X: ev.X, Y: ev.Y}, true

	case *sdl.ControllerButtonEvent:
		out = event.Event{
			Button:     event.Button(ev.Button),
			InstanceID: int32(ev.Which),
		}
		switch ev.Type {
		case sdl.CONTROLLERBUTTONDOWN:
			out.Kind = event.KindControllerButtonDown
		case sdl.CONTROLLERBUTTONUP:
			out.Kind = event.KindControllerButtonUp
		default:
			return out, false
		}
		return out, true

	case *sdl.ControllerAxisEvent:
		return event.Event{
			Kind:       event.KindControllerAxisMotion,
			Axis:       event.Axis(ev.Axis),
			AxisValue:  ev.Value,
			InstanceID: int32(ev.Which),
		}, true

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return event.Event{Kind: event.KindFocusGained}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return event.Event{Kind: event.KindFocusLost}, true
		}
	}

	return event.Event{}, false
}
