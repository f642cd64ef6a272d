package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(48000)
	bufferDuration    = 50 * time.Millisecond
)

// Config selects whether feedback sounds play and how loud
type Config struct {
	Enabled bool
	Volume  float64
}

// Feedback plays key clicks and bells
// Satisfied by *Player and Nop
type Feedback interface {
	KeyClick()
	Bell()
	Close()
}

// New returns a speaker-backed player when enabled, Nop otherwise
func New(cfg Config) (Feedback, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	p := NewPlayer(DefaultSampleRate, cfg.Volume)
	if err := p.Initialize(); err != nil {
		return Nop{}, err
	}
	return p, nil
}

// Player mixes feedback sounds into the speaker
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; no sound plays until Initialize
func NewPlayer(rate beep.SampleRate, volume float64) *Player {
	return &Player{
		rate:   rate,
		volume: max(0, min(volume, 1)),
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(bufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences pending sounds and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

func (p *Player) KeyClick() { p.play(CreateKeyClick(p.rate, p.volume)) }

func (p *Player) Bell() { p.play(CreateBell(p.rate, p.volume)) }

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Nop discards all feedback
type Nop struct{}

func (Nop) KeyClick() {}
func (Nop) Bell()     {}
func (Nop) Close()    {}
