package terminal

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/input"
	"github.com/lixenwraith/retrodesk/render"
)

// Screen is the tcell-backed drawing surface and input source
type Screen struct {
	screen tcell.Screen
	queue  *event.Queue
	tr     *translator
	logger *log.Logger
	clip   core.Rect

	pollDone chan struct{}
	finiOnce sync.Once
}

// New creates a screen on the controlling terminal
func New(keys *input.KeyTable, logger *log.Logger) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(ts, keys, logger), nil
}

// NewWithScreen wraps an existing tcell screen, used with simulation screens in tests
func NewWithScreen(ts tcell.Screen, keys *input.KeyTable, logger *log.Logger) *Screen {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Screen{
		screen:   ts,
		queue:    event.NewQueue(),
		tr:       newTranslator(keys),
		logger:   logger,
		pollDone: make(chan struct{}),
	}
}

// Init takes over the terminal, enables mouse reporting, and starts the poller
func (s *Screen) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.HideCursor()
	s.ResetClip()

	core.SetCrashFinalizer(s.Fini)
	core.Go(s.poll)
	return nil
}

// Fini restores the terminal. Safe to call multiple times
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		s.screen.Fini()
	})
}

// Done is closed once the poller exits after Fini
func (s *Screen) Done() <-chan struct{} {
	return s.pollDone
}

// poll blocks on tcell and feeds translated events to the queue
func (s *Screen) poll() {
	defer close(s.pollDone)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		raw, ok := s.tr.translate(ev)
		if !ok {
			continue
		}
		if !s.queue.Push(raw) {
			s.logger.Printf("terminal: event queue full, dropped %s", raw.Type)
		}
	}
}

// Poll returns the next pending event without blocking
func (s *Screen) Poll() (event.Raw, bool) {
	return s.queue.Pop()
}

// Dropped returns the number of events lost to a full queue
func (s *Screen) Dropped() uint64 {
	return s.queue.Dropped()
}

// Sync forces a full redraw, used after resize
func (s *Screen) Sync() {
	s.screen.Sync()
	s.ResetClip()
}

// Size returns the terminal dimensions in cells
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// SetClip constrains drawing to rect within the terminal
func (s *Screen) SetClip(rect core.Rect) {
	w, h := s.screen.Size()
	s.clip = rect.Intersect(core.Rect{W: w, H: h})
}

// ResetClip restores drawing to the whole terminal
func (s *Screen) ResetClip() {
	w, h := s.screen.Size()
	s.clip = core.Rect{W: w, H: h}
}

// FillRect paints the clipped part of rect with spaces on color
func (s *Screen) FillRect(rect core.Rect, color render.RGB) {
	r := rect.Intersect(s.clip)
	c := toTcell(color)
	style := tcell.StyleDefault.Background(c).Foreground(c)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// BlitGlyph draws a glyph keeping the cell's current background
func (s *Screen) BlitGlyph(ch rune, x, y int, fg render.RGB) {
	if !s.clip.Contains(core.Point{X: x, Y: y}) {
		return
	}
	_, _, style, _ := s.screen.GetContent(x, y)
	s.screen.SetContent(x, y, render.GlyphFor(ch), nil, style.Foreground(toTcell(fg)))
}

// Present publishes the drawn frame
func (s *Screen) Present() error {
	s.screen.Show()
	return nil
}

func toTcell(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
