package platform

import (
	"testing"

	"github.com/Faultbox/gamestack/internal/event"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   sdl.Event
		want event.Event
		ok   bool
	}{
		{
			name: "quit",
			in:   &sdl.QuitEvent{Type: sdl.QUIT},
			want: event.Event{Kind: event.KindQuit},
			ok:   true,
		},
		{
			name: "key down escape",
			in:   &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}},
			want: event.Event{Kind: event.KindKeyDown, Key: event.KeyEscape},
			ok:   true,
		},
		{
			name: "key up with shift and repeat",
			in:   &sdl.KeyboardEvent{Type: sdl.KEYUP, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_a, Mod: uint16(sdl.KMOD_LSHIFT)}},
			want: event.Event{Kind: event.KindKeyUp, Key: event.KeyA, Mod: event.ModLShift, Repeat: true},
			ok:   true,
		},
		{
			name: "arrow key",
			in:   &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_UP}},
			want: event.Event{Kind: event.KindKeyDown, Key: event.KeyUp},
			ok:   true,
		},
		{
			name: "mouse down",
			in:   &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 3, Y: 4},
			want: event.Event{Kind: event.KindMouseButtonDown, MouseButton: event.MouseLeft, X: 3, Y: 4},
			ok:   true,
		},
		{
			name: "mouse up",
			in:   &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_RIGHT, X: 5, Y: 6},
			want: event.Event{Kind: event.KindMouseButtonUp, MouseButton: event.MouseRight, X: 5, Y: 6},
			ok:   true,
		},
		{
			name: "mouse motion",
			in:   &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, State: sdl.ButtonLMask(), X: 1, Y: 2, XRel: -3, YRel: 4},
			want: event.Event{Kind: event.KindMouseMotion, MouseState: 1, X: 1, Y: 2, XRel: -3, YRel: 4},
			ok:   true,
		},
		{
			name: "mouse wheel",
			in:   &sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, X: 0, Y: 2},
			want: event.Event{Kind: event.KindMouseWheel, X: 0, Y: 2},
			ok:   true,
		},
		{
			name: "controller button",
			in:   &sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONDOWN, Which: 3, Button: uint8(sdl.CONTROLLER_BUTTON_START)},
			want: event.Event{Kind: event.KindControllerButtonDown, Button: event.ButtonStart, InstanceID: 3},
			ok:   true,
		},
		{
			name: "controller button up",
			in:   &sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONUP, Which: 1, Button: uint8(sdl.CONTROLLER_BUTTON_A)},
			want: event.Event{Kind: event.KindControllerButtonUp, Button: event.ButtonA, InstanceID: 1},
			ok:   true,
		},
		{
			name: "controller axis",
			in:   &sdl.ControllerAxisEvent{Type: sdl.CONTROLLERAXISMOTION, Which: 2, Axis: uint8(sdl.CONTROLLER_AXIS_RIGHTX), Value: 1200},
			want: event.Event{Kind: event.KindControllerAxisMotion, Axis: event.AxisRightX, AxisValue: 1200, InstanceID: 2},
			ok:   true,
		},
		{
			name: "focus gained",
			in:   &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_GAINED},
			want: event.Event{Kind: event.KindFocusGained},
			ok:   true,
		},
		{
			name: "focus lost",
			in:   &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_FOCUS_LOST},
			want: event.Event{Kind: event.KindFocusLost},
			ok:   true,
		},
		{
			name: "resize is not forwarded",
			in:   &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			ok:   false,
		},
		{
			name: "text input is dropped",
			in:   &sdl.TextInputEvent{Type: sdl.TEXTINPUT},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("translate = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// The event package mirrors SDL's numbering so translate can cast.
func TestConstantsMirrorSDL(t *testing.T) {
	keys := map[event.Keycode]sdl.Keycode{
		event.KeyEscape:    sdl.K_ESCAPE,
		event.KeyReturn:    sdl.K_RETURN,
		event.KeyBackspace: sdl.K_BACKSPACE,
		event.KeyTab:       sdl.K_TAB,
		event.KeySpace:     sdl.K_SPACE,
		event.KeyP:         sdl.K_p,
		event.KeyLeft:      sdl.K_LEFT,
		event.KeyRight:     sdl.K_RIGHT,
		event.KeyUp:        sdl.K_UP,
		event.KeyDown:      sdl.K_DOWN,
	}
	for ours, theirs := range keys {
		if int64(ours) != int64(theirs) {
			t.Errorf("keycode %d != SDL %d", ours, theirs)
		}
	}

	if int(event.ModLCtrl) != int(sdl.KMOD_LCTRL) || int(event.ModRAlt) != int(sdl.KMOD_RALT) {
		t.Error("modifier bits differ from SDL")
	}
	if int(event.ButtonDPadRight) != int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT) {
		t.Error("controller button numbering differs from SDL")
	}
	if int(event.AxisTriggerRight) != int(sdl.CONTROLLER_AXIS_TRIGGERRIGHT) {
		t.Error("controller axis numbering differs from SDL")
	}
	if int(event.MouseX2) != int(sdl.BUTTON_X2) {
		t.Error("mouse button numbering differs from SDL")
	}
}
