package engine

import (
	"errors"

	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/panel"
	"github.com/lixenwraith/retrodesk/render"
)

// recordingPanel captures routed events and render calls
type recordingPanel struct {
	panel.Base
	name        string
	received    []event.Raw
	renders     []core.Rect
	clipSeen    []core.Rect
	focusOnDown bool
	fail        error
	panicMsg    string
	focusEvents []bool
}

func newRecording(name string, rect core.Rect, color render.RGB) *recordingPanel {
	return &recordingPanel{
		Base:        panel.Base{Rect: rect, Color: color},
		name:        name,
		focusOnDown: true,
	}
}

func (p *recordingPanel) Render(t render.Target, r core.Rect) {
	p.renders = append(p.renders, r)
	if cb, ok := t.(*render.CellBuffer); ok {
		p.clipSeen = append(p.clipSeen, cb.Clip())
	}
	// Deliberately overdraw to prove the compositor clips
	w, h := t.Size()
	t.FillRect(core.Rect{W: w, H: h}, p.Color)
}

func (p *recordingPanel) HandleEvent(ctx *panel.Context, ev event.Raw) error {
	p.received = append(p.received, ev)
	if p.panicMsg != "" {
		panic(p.panicMsg)
	}
	if ev.Type == event.PointerDown && p.focusOnDown {
		ctx.Focus()
	}
	return p.fail
}

func (p *recordingPanel) FocusChanged(focused bool) {
	p.focusEvents = append(p.focusEvents, focused)
}

var errHandler = errors.New("handler failed")

// scriptedSource replays a fixed event list per frame
type scriptedSource struct {
	frames [][]event.Raw
	cur    []event.Raw
	polls  int
}

func (s *scriptedSource) Poll() (event.Raw, bool) {
	s.polls++
	if len(s.cur) == 0 {
		return event.Raw{}, false
	}
	ev := s.cur[0]
	s.cur = s.cur[1:]
	return ev, true
}

// nextFrame loads the next scripted batch, called from Present
func (s *scriptedSource) nextFrame() {
	if len(s.frames) == 0 {
		return
	}
	s.cur = append(s.cur, s.frames[0]...)
	s.frames = s.frames[1:]
}

// headlessSurface presents into a cell buffer and records frames
type headlessSurface struct {
	*render.CellBuffer
	presented int
	onPresent func()
	err       error
}

func (s *headlessSurface) Present() error {
	s.presented++
	if s.onPresent != nil {
		s.onPresent()
	}
	return s.err
}
