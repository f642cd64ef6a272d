package console

import (
	"errors"
	"math"
)

// initialLineCap is the capacity of a fresh line, terminator slot included
const initialLineCap = 32

// ErrResourceExhausted is returned when a line cannot grow to hold an append
var ErrResourceExhausted = errors.New("console: line capacity exhausted")

// Line is a single growable line of console text
// Runes beyond Len are unused; one slot past Len is always reserved
type Line struct {
	buf       []rune
	length    int
	promptLen int
}

// Len returns the number of runes in the line
func (l *Line) Len() int {
	return l.length
}

// Cap returns the current capacity, terminator slot included
func (l *Line) Cap() int {
	return len(l.buf)
}

// PromptLen returns the number of leading runes that form the prompt
func (l *Line) PromptLen() int {
	return l.promptLen
}

// Runes returns a read-only view of the line content
// The slice is invalidated by the next mutation
func (l *Line) Runes() []rune {
	return l.buf[:l.length]
}

// String returns the line content
func (l *Line) String() string {
	return string(l.buf[:l.length])
}

// Reset empties the line and drops its storage
func (l *Line) Reset() {
	l.buf = nil
	l.length = 0
	l.promptLen = 0
}

// AppendRune appends a single rune
func (l *Line) AppendRune(r rune) error {
	if err := l.reserve(1); err != nil {
		return err
	}
	l.buf[l.length] = r
	l.length++
	return nil
}

// AppendString appends every rune of s in order
func (l *Line) AppendString(s string) error {
	n := 0
	for range s {
		n++
	}
	if n == 0 {
		return nil
	}
	if err := l.reserve(n); err != nil {
		return err
	}
	for _, r := range s {
		l.buf[l.length] = r
		l.length++
	}
	return nil
}

// DeleteLast removes the last rune unless only the prompt remains
func (l *Line) DeleteLast() bool {
	if l.length <= l.promptLen {
		return false
	}
	l.length--
	return true
}

// setPrompt appends prompt text and marks it as the non-editable prefix
func (l *Line) setPrompt(prompt string) error {
	if err := l.AppendString(prompt); err != nil {
		return err
	}
	l.promptLen = l.length
	return nil
}

// reserve guarantees room for n more runes plus the terminator slot
// Capacity doubles until sufficient, with a single reallocation per call
func (l *Line) reserve(n int) error {
	if n > math.MaxInt-l.length-1 {
		return ErrResourceExhausted
	}
	required := l.length + n + 1
	capacity := len(l.buf)
	if required <= capacity {
		return nil
	}
	if capacity == 0 {
		capacity = initialLineCap
	}
	for capacity < required {
		if capacity > math.MaxInt/2 {
			return ErrResourceExhausted
		}
		capacity *= 2
	}
	grown := make([]rune, capacity)
	copy(grown, l.buf[:l.length])
	l.buf = grown
	return nil
}
