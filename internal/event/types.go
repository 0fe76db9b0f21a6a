package event

import "fmt"

// Kind identifies the platform event a Event value carries.
type Kind int

const (
	KindOther Kind = iota
	KindQuit
	KindKeyDown
	KindKeyUp
	KindMouseButtonDown
	KindMouseButtonUp
	KindMouseMotion
	KindMouseWheel
	KindControllerButtonDown
	KindControllerButtonUp
	KindControllerAxisMotion
	KindFocusGained
	KindFocusLost
)

var kindNames = [...]string{
	KindOther:                "other",
	KindQuit:                 "quit",
	KindKeyDown:              "key-down",
	KindKeyUp:                "key-up",
	KindMouseButtonDown:      "mouse-button-down",
	KindMouseButtonUp:        "mouse-button-up",
	KindMouseMotion:          "mouse-motion",
	KindMouseWheel:           "mouse-wheel",
	KindControllerButtonDown: "controller-button-down",
	KindControllerButtonUp:   "controller-button-up",
	KindControllerAxisMotion: "controller-axis-motion",
	KindFocusGained:          "focus-gained",
	KindFocusLost:            "focus-lost",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Keycode is a virtual key code. Values mirror SDL2 keycodes so the platform
// layer converts with a plain cast.
type Keycode int32

const (
	KeyUnknown   Keycode = 0
	KeyBackspace Keycode = '\b'
	KeyTab       Keycode = '\t'
	KeyReturn    Keycode = '\r'
	KeyEscape    Keycode = 0x1b
	KeySpace     Keycode = ' '
	Key0         Keycode = '0'
	Key1         Keycode = '1'
	Key9         Keycode = '9'
	KeyA         Keycode = 'a'
	KeyN         Keycode = 'n'
	KeyP         Keycode = 'p'
	KeyQ         Keycode = 'q'
	KeyY         Keycode = 'y'
	KeyZ         Keycode = 'z'
	KeyRight     Keycode = 0x4000004F
	KeyLeft      Keycode = 0x40000050
	KeyDown      Keycode = 0x40000051
	KeyUp        Keycode = 0x40000052
)

// Mod is a bit set of keyboard modifiers (KMOD_* values).
type Mod uint16

const (
	ModNone   Mod = 0x0000
	ModLShift Mod = 0x0001
	ModRShift Mod = 0x0002
	ModLCtrl  Mod = 0x0040
	ModRCtrl  Mod = 0x0080
	ModLAlt   Mod = 0x0100
	ModRAlt   Mod = 0x0200
	ModLGUI   Mod = 0x0400
	ModRGUI   Mod = 0x0800
	ModNum    Mod = 0x1000
	ModCaps   Mod = 0x2000

	ModShift = ModLShift | ModRShift
	ModCtrl  = ModLCtrl | ModRCtrl
	ModAlt   = ModLAlt | ModRAlt
	ModGUI   = ModLGUI | ModRGUI
)

// Has reports whether any bit of m is set.
func (mod Mod) Has(m Mod) bool {
	return mod&m != 0
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseUnknown MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2
)

// MouseState is the set of mouse buttons held during a motion event.
type MouseState uint32

// Pressed reports whether b is held.
func (s MouseState) Pressed(b MouseButton) bool {
	if b == MouseUnknown {
		return false
	}
	return s&(1<<(b-1)) != 0
}

// Left reports whether the left button is held.
func (s MouseState) Left() bool { return s.Pressed(MouseLeft) }

// Middle reports whether the middle button is held.
func (s MouseState) Middle() bool { return s.Pressed(MouseMiddle) }

// Right reports whether the right button is held.
func (s MouseState) Right() bool { return s.Pressed(MouseRight) }

// Button is a game controller button.
type Button int8

const (
	ButtonInvalid Button = iota - 1
	ButtonA
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

// Axis is a game controller axis.
type Axis int8

const (
	AxisInvalid Axis = iota - 1
	AxisLeftX
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

// Event is a translated platform event. Only the fields relevant to Kind are set.
type Event struct {
	Kind Kind

	// Keyboard
	Key    Keycode
	Mod    Mod
	Repeat bool

	// Mouse
	MouseButton MouseButton
	MouseState  MouseState
	X, Y        int32
	XRel, YRel  int32

	// Controller
	Button     Button
	Axis       Axis
	AxisValue  int16
	InstanceID int32
}
