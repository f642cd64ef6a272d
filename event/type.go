package event

import "github.com/lixenwraith/retrodesk/core"

// Type identifies a raw input event
type Type uint8

const (
	// TypeNone is the zero value, never routed
	TypeNone Type = iota

	// === Spatial: carry a surface coordinate, routed by hit-test ===

	// PointerMotion reports pointer movement
	PointerMotion
	// PointerDown reports a button press at X, Y
	PointerDown
	// PointerUp reports a button release at X, Y
	PointerUp
	// Wheel reports a wheel step with the pointer at X, Y | WheelDY: +1 down, -1 up
	Wheel

	// === Keyboard/text: routed to the focused panel ===

	// KeyDown reports a key press | Scancode, Mods
	KeyDown
	// KeyUp reports a key release | Scancode, Mods
	KeyUp
	// TextEditing reports in-progress text composition | Text
	TextEditing
	// TextInput reports committed text that has no scancode mapping | Text
	TextInput

	// === Neither: consumed by the event pump, ignored by the router ===

	// Resize reports new surface dimensions in X, Y
	Resize
	// WindowClose requests shutdown from the window system
	WindowClose
	// Quit requests shutdown from the user
	Quit
)

var typeNames = [...]string{
	TypeNone:      "none",
	PointerMotion: "pointer_motion",
	PointerDown:   "pointer_down",
	PointerUp:     "pointer_up",
	Wheel:         "wheel",
	KeyDown:       "key_down",
	KeyUp:         "key_up",
	TextEditing:   "text_editing",
	TextInput:     "text_input",
	Resize:        "resize",
	WindowClose:   "window_close",
	Quit:          "quit",
}

// String returns the event type name
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Class is the routing category of an event
type Class uint8

const (
	ClassNone    Class = iota // Ignored by the router
	ClassSpatial              // Hit-tested against panels
	ClassFocus                // Delivered to the focused panel
)

// Mod is a modifier bitmask
type Mod uint8

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModCaps  Mod = 1 << 3 // Caps lock active
)

// Button identifies a pointer button
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Raw is a single input event in surface coordinates
type Raw struct {
	Type     Type
	X, Y     int
	Button   Button
	WheelDY  int
	Scancode int
	Mods     Mod
	Text     string
}

// Classify returns the routing class of ev
func Classify(ev Raw) Class {
	switch ev.Type {
	case PointerMotion, PointerDown, PointerUp, Wheel:
		return ClassSpatial
	case KeyDown, KeyUp, TextEditing, TextInput:
		return ClassFocus
	default:
		return ClassNone
	}
}

// Position returns the coordinate of a spatial event
func Position(ev Raw) (core.Point, bool) {
	if Classify(ev) != ClassSpatial {
		return core.Point{}, false
	}
	return core.Point{X: ev.X, Y: ev.Y}, true
}
