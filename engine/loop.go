package engine

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/render"
	"github.com/lixenwraith/retrodesk/status"
)

// DefaultFrameInterval is the fixed sleep between frames
const DefaultFrameInterval = 16 * time.Millisecond

// Source yields pending input events without blocking
type Source interface {
	Poll() (event.Raw, bool)
}

// Surface is a drawable target that can publish frames
type Surface interface {
	render.Target
	render.Presenter
}

// LoopConfig configures the frame loop
type LoopConfig struct {
	Interval time.Duration
	// MaxFrames stops the loop after that many frames, 0 runs until quit
	MaxFrames int
	// OnResize is invoked for resize events before the next render
	OnResize func(width, height int)
	// Stats receives loop.frames and route.<result> counters, nil allocates a private registry
	Stats *status.Registry
}

// Loop is the poll-driven frame loop: drain input, render once, sleep
// Fixed-rate sleep, not frame-paced
type Loop struct {
	comp    *Compositor
	source  Source
	surface Surface
	cfg     LoopConfig
	frames  uint64

	frameCount *atomic.Int64
	routed     [len(resultNames)]*atomic.Int64
}

// NewLoop creates a loop rendering comp onto surface with input from source
func NewLoop(comp *Compositor, source Source, surface Surface, cfg LoopConfig) *Loop {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultFrameInterval
	}
	if cfg.Stats == nil {
		cfg.Stats = status.NewRegistry()
	}
	l := &Loop{
		comp:       comp,
		source:     source,
		surface:    surface,
		cfg:        cfg,
		frameCount: cfg.Stats.Counter("loop.frames"),
	}
	for i, name := range resultNames {
		l.routed[i] = cfg.Stats.Counter("route." + name)
	}
	return l
}

// Stats returns the registry the loop reports into
func (l *Loop) Stats() *status.Registry {
	return l.cfg.Stats
}

// Frames returns the number of frames rendered so far
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run executes frames until a quit event, MaxFrames, or context cancellation
func (l *Loop) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for {
		if l.drain() {
			return nil
		}

		l.comp.Render(l.surface)
		if err := l.surface.Present(); err != nil {
			return fmt.Errorf("present frame %d: %w", l.frames, err)
		}
		l.frames++
		l.frameCount.Add(1)

		if l.cfg.MaxFrames > 0 && l.frames >= uint64(l.cfg.MaxFrames) {
			return nil
		}

		timer.Reset(l.cfg.Interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// drain routes every pending event, returns true on a shutdown request
func (l *Loop) drain() bool {
	for {
		ev, ok := l.source.Poll()
		if !ok {
			return false
		}

		switch ev.Type {
		case event.Quit, event.WindowClose:
			l.comp.logger.Printf("loop: %s after %d frames", ev.Type, l.frames)
			return true
		case event.Resize:
			if l.cfg.OnResize != nil {
				l.cfg.OnResize(ev.X, ev.Y)
			}
			continue
		}

		if res := l.comp.Dispatch(ev); int(res) < len(l.routed) {
			l.routed[res].Add(1)
		}
	}
}

// QueueSource adapts an event queue to Source
type QueueSource struct {
	Queue *event.Queue
}

// Poll pops the next queued event
func (s QueueSource) Poll() (event.Raw, bool) {
	return s.Queue.Pop()
}
