package input

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/retrodesk/event"
)

// TableSize is the number of scancodes covered by a key table
const TableSize = 256

// Scancodes with non-printing behavior (USB HID usage IDs)
const (
	ScanEnter     = 40
	ScanEscape    = 41
	ScanBackspace = 42
	ScanTab       = 43
	ScanSpace     = 44
	ScanCapsLock  = 57
)

var (
	// ErrUnknownScancode reports a scancode outside the table range
	ErrUnknownScancode = errors.New("input: scancode out of range")
	// ErrUnmapped reports a scancode with no character in the selected table
	ErrUnmapped = errors.New("input: scancode has no character")
)

// KeyTable maps scancodes to characters for the plain and shifted state
// Zero entries are unmapped
type KeyTable struct {
	Plain [TableSize]rune
	Shift [TableSize]rune
}

// DefaultKeyTable returns the layout the offline table generator emitted for the target keyboard
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{}

	// Letters a..z occupy 4..29
	for i := 0; i < 26; i++ {
		kt.Plain[4+i] = 'a' + rune(i)
		kt.Shift[4+i] = 'A' + rune(i)
	}

	// Digit row 1..9 then 0 occupies 30..39
	digits := "1234567890"
	shifted := "!\"?$%^&*()"
	for i, d := range digits {
		kt.Plain[30+i] = d
		kt.Shift[30+i] = rune(shifted[i])
	}

	punct := []struct {
		code         int
		plain, shift rune
	}{
		{ScanSpace, ' ', ' '},
		{45, '-', '_'},
		{46, '=', '+'},
		{47, '[', '{'},
		{48, ']', '}'},
		{49, '\\', '|'},
		{50, '#', '~'},
		{51, ';', ':'},
		{52, '\'', '@'},
		{54, ',', '<'},
		{55, '.', '>'},
		{56, '/', '?'},
	}
	for _, p := range punct {
		kt.Plain[p.code] = p.plain
		kt.Shift[p.code] = p.shift
	}

	return kt
}

// Resolve maps a scancode and modifier set to a character
// Caps lock flips the case of a resolved ASCII letter after table selection
func (kt *KeyTable) Resolve(scancode int, mods event.Mod) (rune, error) {
	if scancode < 0 || scancode >= TableSize {
		return 0, fmt.Errorf("%w: %d", ErrUnknownScancode, scancode)
	}

	ch := kt.Plain[scancode]
	if mods&event.ModShift != 0 {
		ch = kt.Shift[scancode]
	}
	if ch == 0 {
		return 0, fmt.Errorf("%w: %d", ErrUnmapped, scancode)
	}

	if mods&event.ModCaps != 0 {
		ch = toggleCase(ch)
	}
	return ch, nil
}

// Reverse finds the scancode producing r, preferring the plain table
func (kt *KeyTable) Reverse(r rune) (scancode int, shift bool, ok bool) {
	if r == 0 {
		return 0, false, false
	}
	for i := 0; i < TableSize; i++ {
		if kt.Plain[i] == r {
			return i, false, true
		}
	}
	for i := 0; i < TableSize; i++ {
		if kt.Shift[i] == r {
			return i, true, true
		}
	}
	return 0, false, false
}

// Merge overlays the non-zero entries of other onto kt
func (kt *KeyTable) Merge(other *KeyTable) {
	if other == nil {
		return
	}
	for i := 0; i < TableSize; i++ {
		if other.Plain[i] != 0 {
			kt.Plain[i] = other.Plain[i]
		}
		if other.Shift[i] != 0 {
			kt.Shift[i] = other.Shift[i]
		}
	}
}

func toggleCase(ch rune) rune {
	switch {
	case ch >= 'a' && ch <= 'z':
		return ch - ('a' - 'A')
	case ch >= 'A' && ch <= 'Z':
		return ch + ('a' - 'A')
	}
	return ch
}
