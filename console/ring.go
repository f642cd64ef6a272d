package console

import (
	"fmt"
	"iter"
)

// DefaultCapacity is the number of lines retained by a console ring
const DefaultCapacity = 512

// Seed lines written by Initialize
const (
	DefaultBanner = "READY"
	DefaultPrompt = "> "
)

// Ring is a fixed-capacity circular log of lines
// When not empty, slots start..end (wrapping) hold the retained lines oldest first
type Ring struct {
	lines   []Line
	start   int
	end     int
	empty   bool
	evicted uint64
}

// NewRing creates an empty ring holding at most capacity lines
// A non-positive capacity selects DefaultCapacity
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		lines: make([]Line, capacity),
		empty: true,
	}
}

// Capacity returns the maximum number of retained lines
func (r *Ring) Capacity() int {
	return len(r.lines)
}

// Reset drops every line and returns the ring to its empty state
func (r *Ring) Reset() {
	for i := range r.lines {
		r.lines[i].Reset()
	}
	r.start = 0
	r.end = 0
	r.empty = true
}

// Initialize resets the ring and seeds it with a banner line and a prompted line
func (r *Ring) Initialize(banner, prompt string) error {
	r.Reset()
	if err := r.StartLine(); err != nil {
		return err
	}
	if err := r.AppendString(banner); err != nil {
		return fmt.Errorf("seed banner: %w", err)
	}
	if err := r.StartLine(prompt); err != nil {
		return fmt.Errorf("seed prompt: %w", err)
	}
	return nil
}

// StartLine begins a new active line, evicting the oldest line if the ring is full
// An optional prompt is written immediately and recorded as the line's prompt length
func (r *Ring) StartLine(prompt ...string) error {
	if r.empty {
		r.empty = false
	} else {
		r.end = (r.end + 1) % len(r.lines)
		if r.end == r.start {
			r.lines[r.start].Reset()
			r.start = (r.start + 1) % len(r.lines)
			r.evicted++
		}
	}

	line := &r.lines[r.end]
	line.Reset()
	for _, p := range prompt {
		if err := line.setPrompt(p); err != nil {
			return err
		}
	}
	return nil
}

// Active returns the line receiving appends, nil before the first StartLine
func (r *Ring) Active() *Line {
	if r.empty {
		return nil
	}
	return &r.lines[r.end]
}

// AppendRune appends a rune to the active line
func (r *Ring) AppendRune(ch rune) error {
	if r.empty {
		if err := r.StartLine(); err != nil {
			return err
		}
	}
	return r.lines[r.end].AppendRune(ch)
}

// AppendString appends text to the active line
func (r *Ring) AppendString(s string) error {
	if r.empty {
		if err := r.StartLine(); err != nil {
			return err
		}
	}
	return r.lines[r.end].AppendString(s)
}

// DeleteLast removes the last rune of the active line, never crossing the prompt
func (r *Ring) DeleteLast() bool {
	if r.empty {
		return false
	}
	return r.lines[r.end].DeleteLast()
}

// Len returns the number of retained lines
func (r *Ring) Len() int {
	if r.empty {
		return 0
	}
	n := len(r.lines)
	return (r.end-r.start+n)%n + 1
}

// Evicted returns how many lines have been dropped from the front since creation
func (r *Ring) Evicted() uint64 {
	return r.evicted
}

// Line returns the i-th retained line in chronological order, nil when out of range
func (r *Ring) Line(i int) *Line {
	if i < 0 || i >= r.Len() {
		return nil
	}
	return &r.lines[(r.start+i)%len(r.lines)]
}

// All yields retained lines oldest first
// Each call starts a fresh traversal
func (r *Ring) All() iter.Seq[*Line] {
	return func(yield func(*Line) bool) {
		if r.empty {
			return
		}
		n := len(r.lines)
		for i := r.start; ; i = (i + 1) % n {
			if !yield(&r.lines[i]) {
				return
			}
			if i == r.end {
				return
			}
		}
	}
}

// Lines returns a snapshot of retained line text oldest first
func (r *Ring) Lines() []string {
	out := make([]string, 0, r.Len())
	for l := range r.All() {
		out = append(out, l.String())
	}
	return out
}
