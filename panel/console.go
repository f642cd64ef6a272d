package panel

import (
	"errors"
	"io"
	"log"

	"github.com/lixenwraith/retrodesk/console"
	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/input"
	"github.com/lixenwraith/retrodesk/render"
)

// CursorGlyph marks the insertion point of a focused console
const CursorGlyph = '_'

// ConsoleOptions configures a console panel
type ConsoleOptions struct {
	Prompt   string
	Keys     *input.KeyTable
	Feedback Feedback
	Logger   *log.Logger

	Bg       render.RGB
	Fg       render.RGB
	PromptFg render.RGB
	CursorFg render.RGB
}

// DefaultConsoleOptions returns the stock prompt, key table, and palette
func DefaultConsoleOptions() ConsoleOptions {
	return ConsoleOptions{
		Prompt:   console.DefaultPrompt,
		Keys:     input.DefaultKeyTable(),
		Bg:       render.RgbConsoleBg,
		Fg:       render.RgbConsoleFg,
		PromptFg: render.RgbConsolePrompt,
		CursorFg: render.RgbConsoleCursor,
	}
}

// Console is a panel showing a scrollable view of a console ring
// The ring is borrowed, its owner outlives the panel
type Console struct {
	Base
	ring *console.Ring
	opts ConsoleOptions

	scroll  int // Lines scrolled back from the newest
	caps    bool
	focused bool
}

// NewConsole creates a console panel over ring
func NewConsole(rect core.Rect, ring *console.Ring, opts ConsoleOptions) *Console {
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}
	if opts.Feedback == nil {
		opts.Feedback = nopFeedback{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	return &Console{
		Base: Base{Rect: rect, Color: opts.Bg},
		ring: ring,
		opts: opts,
	}
}

// Ring returns the hosted console ring
func (p *Console) Ring() *console.Ring {
	return p.ring
}

// Scroll returns how many lines the view is scrolled back
func (p *Console) Scroll() int {
	return p.scroll
}

// FocusChanged tracks focus for cursor drawing
func (p *Console) FocusChanged(focused bool) {
	p.focused = focused
}

// Render draws the newest lines that fit, offset by the scroll position
func (p *Console) Render(t render.Target, r core.Rect) {
	t.FillRect(r, p.Color)
	if r.Empty() {
		return
	}

	total := p.ring.Len()
	scroll := min(p.scroll, p.maxScroll(r.H))
	first := max(0, total-r.H-scroll)
	last := min(total, first+r.H) - 1

	i := 0
	for line := range p.ring.All() {
		if i > last {
			break
		}
		if i >= first {
			p.drawLine(t, r, r.Y+i-first, line, i == total-1 && scroll == 0)
		}
		i++
	}
}

func (p *Console) drawLine(t render.Target, r core.Rect, y int, line *console.Line, active bool) {
	runes := line.Runes()
	n := min(len(runes), r.W)
	for x := 0; x < n; x++ {
		fg := p.opts.Fg
		if x < line.PromptLen() {
			fg = p.opts.PromptFg
		}
		t.BlitGlyph(runes[x], r.X+x, y, fg)
	}
	if active && p.focused && len(runes) < r.W {
		t.BlitGlyph(CursorGlyph, r.X+len(runes), y, p.opts.CursorFg)
	}
}

// HandleEvent applies pointer and keyboard input to the console
func (p *Console) HandleEvent(ctx *Context, ev event.Raw) error {
	switch ev.Type {
	case event.PointerDown:
		ctx.Focus()
	case event.Wheel:
		p.scroll -= ev.WheelDY
		p.scroll = max(0, min(p.scroll, p.maxScroll(p.Rect.H)))
	case event.KeyDown:
		return p.handleKey(ev)
	case event.TextInput:
		p.scroll = 0
		return p.ring.AppendString(ev.Text)
	}
	return nil
}

func (p *Console) handleKey(ev event.Raw) error {
	switch ev.Scancode {
	case input.ScanCapsLock:
		p.caps = !p.caps
		return nil
	case input.ScanEnter:
		p.scroll = 0
		p.opts.Feedback.KeyClick()
		return p.ring.StartLine(p.opts.Prompt)
	case input.ScanBackspace:
		p.scroll = 0
		if !p.ring.DeleteLast() {
			p.opts.Feedback.Bell()
		}
		return nil
	case input.ScanEscape, input.ScanTab:
		return nil
	}

	mods := ev.Mods
	if p.caps {
		mods ^= event.ModCaps
	}

	ch, err := p.opts.Keys.Resolve(ev.Scancode, mods)
	switch {
	case errors.Is(err, input.ErrUnknownScancode):
		p.opts.Logger.Printf("console: ignoring key: %v", err)
		p.opts.Feedback.Bell()
		return nil
	case errors.Is(err, input.ErrUnmapped):
		return nil
	case err != nil:
		return err
	}

	p.scroll = 0
	p.opts.Feedback.KeyClick()
	return p.ring.AppendRune(ch)
}

func (p *Console) maxScroll(rows int) int {
	return max(0, p.ring.Len()-rows)
}
