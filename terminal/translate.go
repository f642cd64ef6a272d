package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/input"
)

const pointerButtons = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

// translator converts tcell events into raw events
// Owned by the poller goroutine, carries mouse button state between events
type translator struct {
	keys    *input.KeyTable
	buttons tcell.ButtonMask
}

func newTranslator(keys *input.KeyTable) *translator {
	if keys == nil {
		keys = input.DefaultKeyTable()
	}
	return &translator{keys: keys}
}

// translate returns the raw event for ev, false when ev has no desktop meaning
func (tr *translator) translate(ev tcell.Event) (event.Raw, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return tr.key(e)
	case *tcell.EventMouse:
		return tr.mouse(e), true
	case *tcell.EventResize:
		w, h := e.Size()
		return event.Raw{Type: event.Resize, X: w, Y: h}, true
	}
	return event.Raw{}, false
}

func (tr *translator) key(e *tcell.EventKey) (event.Raw, bool) {
	mods := convertMods(e.Modifiers())

	switch e.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return event.Raw{Type: event.Quit}, true
	case tcell.KeyEnter:
		return keyDown(input.ScanEnter, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keyDown(input.ScanBackspace, mods), true
	case tcell.KeyTab:
		return keyDown(input.ScanTab, mods), true
	case tcell.KeyEscape:
		return keyDown(input.ScanEscape, mods), true
	case tcell.KeyRune:
		r := e.Rune()
		code, shift, ok := tr.keys.Reverse(r)
		if !ok {
			return event.Raw{Type: event.TextInput, Text: string(r), Mods: mods}, true
		}
		// Case is carried by the rune, terminal shift reports are unreliable
		mods &^= event.ModShift
		if shift {
			mods |= event.ModShift
		}
		return keyDown(code, mods), true
	}
	return event.Raw{}, false
}

func (tr *translator) mouse(e *tcell.EventMouse) event.Raw {
	x, y := e.Position()
	btn := e.Buttons()
	mods := convertMods(e.Modifiers())

	switch {
	case btn&tcell.WheelUp != 0:
		return event.Raw{Type: event.Wheel, X: x, Y: y, WheelDY: -1, Mods: mods}
	case btn&tcell.WheelDown != 0:
		return event.Raw{Type: event.Wheel, X: x, Y: y, WheelDY: 1, Mods: mods}
	}

	pressed := btn & pointerButtons
	prev := tr.buttons
	tr.buttons = pressed

	if down := pressed &^ prev; down != 0 {
		return event.Raw{Type: event.PointerDown, X: x, Y: y, Button: convertButton(down), Mods: mods}
	}
	if up := prev &^ pressed; up != 0 {
		return event.Raw{Type: event.PointerUp, X: x, Y: y, Button: convertButton(up), Mods: mods}
	}
	return event.Raw{Type: event.PointerMotion, X: x, Y: y, Button: convertButton(pressed), Mods: mods}
}

func keyDown(code int, mods event.Mod) event.Raw {
	return event.Raw{Type: event.KeyDown, Scancode: code, Mods: mods}
}

func convertMods(m tcell.ModMask) event.Mod {
	var out event.Mod
	if m&tcell.ModShift != 0 {
		out |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= event.ModAlt
	}
	return out
}

func convertButton(b tcell.ButtonMask) event.Button {
	switch {
	case b&tcell.ButtonPrimary != 0:
		return event.ButtonLeft
	case b&tcell.ButtonMiddle != 0:
		return event.ButtonMiddle
	case b&tcell.ButtonSecondary != 0:
		return event.ButtonRight
	}
	return event.ButtonNone
}
