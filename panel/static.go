package panel

import (
	"io"
	"log"

	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/render"
)

// StaticColor is a solid panel that logs the events it receives
type StaticColor struct {
	Base
	Name   string
	logger *log.Logger
}

// NewStaticColor creates a solid panel; a nil logger discards output
func NewStaticColor(name string, rect core.Rect, color render.RGB, logger *log.Logger) *StaticColor {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &StaticColor{
		Base:   Base{Rect: rect, Color: color},
		Name:   name,
		logger: logger,
	}
}

// Render fills the panel with its color
func (p *StaticColor) Render(t render.Target, r core.Rect) {
	t.FillRect(r, p.Color)
}

// HandleEvent records the event and takes focus on press
func (p *StaticColor) HandleEvent(ctx *Context, ev event.Raw) error {
	p.logger.Printf("panel %s: %s at (%d,%d)", p.Name, ev.Type, ev.X, ev.Y)
	if ev.Type == event.PointerDown {
		ctx.Focus()
	}
	return nil
}
