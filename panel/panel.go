// Package panel defines the independently drawn, independently input-addressable
// regions placed on the desktop and the concrete panel kinds.
package panel

import (
	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/render"
)

// Panel is a rectangle that renders itself and consumes routed input
type Panel interface {
	// Bounds returns the panel rectangle in surface coordinates
	Bounds() core.Rect

	// Render draws the panel into t; drawing outside r is clipped away by the caller
	Render(t render.Target, r core.Rect)

	// HandleEvent processes an event routed to this panel
	// Errors are logged by the router and never abort the loop
	HandleEvent(ctx *Context, ev event.Raw) error
}

// FocusListener is optionally implemented by panels that draw focus state
type FocusListener interface {
	FocusChanged(focused bool)
}

// Feedback produces audible cues for console input
type Feedback interface {
	KeyClick()
	Bell()
}

// Base carries the rectangle and fill color shared by panel kinds
type Base struct {
	Rect  core.Rect
	Color render.RGB
}

// Bounds returns the panel rectangle
func (b *Base) Bounds() core.Rect {
	return b.Rect
}

// Context scopes side effects a handler may request during one HandleEvent call
type Context struct {
	focused bool
	focus   func()
	expired bool
}

// NewContext creates a handler context; focus is invoked when the handler requests focus
func NewContext(focused bool, focus func()) *Context {
	return &Context{focused: focused, focus: focus}
}

// Focus makes the handled panel the focused panel
// No-op once the handler returned
func (c *Context) Focus() {
	if c.expired || c.focused {
		return
	}
	c.focused = true
	if c.focus != nil {
		c.focus()
	}
}

// Focused reports whether the handled panel holds focus
func (c *Context) Focused() bool {
	return c.focused
}

// Expire invalidates the context after the handler returned
func (c *Context) Expire() {
	c.expired = true
}

type nopFeedback struct{}

func (nopFeedback) KeyClick() {}
func (nopFeedback) Bell()     {}
