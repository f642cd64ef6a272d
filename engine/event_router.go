package engine

import (
	"fmt"
	"runtime/debug"

	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/panel"
)

// Result reports the outcome of routing one event
type Result uint8

const (
	ResultIgnored   Result = iota // Event class is not routed
	ResultDropped                 // No panel under pointer or no focused panel
	ResultDelivered               // Handler completed
	ResultFailed                  // Handler returned an error or panicked
)

var resultNames = [...]string{"ignored", "dropped", "delivered", "failed"}

// String returns the result name
func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "unknown"
}

// Dispatch routes ev to its target panel
//
// Routing:
//   - Spatial: top-most panel whose rect contains the coordinate
//   - Keyboard/text: the focused panel
//   - Other: ignored, handled by the event pump
//
// Handler failures are contained here and logged; they never reach the loop
func (c *Compositor) Dispatch(ev event.Raw) Result {
	target := NoPanel

	switch event.Classify(ev) {
	case event.ClassSpatial:
		pt, _ := event.Position(ev)
		h, ok := c.HitTest(pt)
		if !ok {
			return ResultDropped
		}
		target = h
	case event.ClassFocus:
		h, ok := c.Focused()
		if !ok {
			return ResultDropped
		}
		target = h
	default:
		return ResultIgnored
	}

	if err := c.deliver(target, ev); err != nil {
		c.logger.Printf("router: panel %d %s: %v", target, ev.Type, err)
		return ResultFailed
	}
	return ResultDelivered
}

// deliver invokes the handler with a context bound to target
func (c *Compositor) deliver(target Handle, ev event.Raw) (err error) {
	p := c.panels[target]
	ctx := panel.NewContext(c.focus == target, func() { c.setFocus(target) })
	defer ctx.Expire()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v\n%s", r, debug.Stack())
		}
	}()

	return p.HandleEvent(ctx, ev)
}
