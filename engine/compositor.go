package engine

import (
	"io"
	"log"

	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/panel"
	"github.com/lixenwraith/retrodesk/render"
)

// Compositor owns the ordered panel list and the focused panel
type Compositor struct {
	panels     []panel.Panel
	focus      Handle
	background render.RGB
	logger     *log.Logger
}

// NewCompositor creates an empty compositor; a nil logger discards output
func NewCompositor(background render.RGB, logger *log.Logger) *Compositor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Compositor{
		panels:     make([]panel.Panel, 0, 8),
		focus:      NoPanel,
		background: background,
		logger:     logger,
	}
}

// Add inserts p at the top of the z-order
func (c *Compositor) Add(p panel.Panel) Handle {
	c.panels = append(c.panels, p)
	return Handle(len(c.panels) - 1)
}

// Len returns the number of panels
func (c *Compositor) Len() int {
	return len(c.panels)
}

// Focused returns the focused panel handle
func (c *Compositor) Focused() (Handle, bool) {
	return c.focus, c.focus != NoPanel
}

// Render clears target and draws every panel bottom to top, each clipped to its rect
// No occlusion culling: all panels redraw every frame
func (c *Compositor) Render(t render.Target) {
	w, h := t.Size()
	full := core.Rect{W: w, H: h}

	t.ResetClip()
	t.FillRect(full, c.background)

	for _, p := range c.panels {
		r := p.Bounds()
		t.SetClip(r)
		p.Render(t, r)
	}
	t.ResetClip()
}

// HitTest returns the top-most panel containing pt
func (c *Compositor) HitTest(pt core.Point) (Handle, bool) {
	for i := len(c.panels) - 1; i >= 0; i-- {
		if c.panels[i].Bounds().Contains(pt) {
			return Handle(i), true
		}
	}
	return NoPanel, false
}

// setFocus moves focus to h and notifies panels that track it
func (c *Compositor) setFocus(h Handle) {
	if h == c.focus {
		return
	}
	prev := c.focus
	c.focus = h

	if fl, ok := c.Panel(prev).(panel.FocusListener); ok {
		fl.FocusChanged(false)
	}
	if fl, ok := c.Panel(h).(panel.FocusListener); ok {
		fl.FocusChanged(true)
	}
	c.logger.Printf("compositor: focus %d -> %d", prev, h)
}
