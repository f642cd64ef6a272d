package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/retrodesk/config"
	"github.com/lixenwraith/retrodesk/console"
	"github.com/lixenwraith/retrodesk/engine"
	"github.com/lixenwraith/retrodesk/input"
	"github.com/lixenwraith/retrodesk/panel"
	"github.com/lixenwraith/retrodesk/render"
)

// desktop is the composed panel stack plus the console rings it borrows
type desktop struct {
	comp  *engine.Compositor
	rings []*console.Ring
}

// buildDesktop creates panels from cfg in listed order, first is bottom-most
// Each console panel gets its own ring
func buildDesktop(cfg *config.Config, keys *input.KeyTable, fb panel.Feedback, logger *log.Logger) (*desktop, error) {
	bg, err := cfg.BackgroundRGB()
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	d := &desktop{comp: engine.NewCompositor(bg, logger)}

	for i, pc := range cfg.Panels {
		var p panel.Panel

		switch pc.Kind {
		case config.KindConsole:
			ring := console.NewRing(cfg.Console.Capacity)
			if err := ring.Initialize(cfg.Console.Banner, cfg.Console.Prompt); err != nil {
				return nil, fmt.Errorf("panels[%d]: %w", i, err)
			}
			opts := panel.DefaultConsoleOptions()
			opts.Prompt = cfg.Console.Prompt
			opts.Keys = keys
			opts.Feedback = fb
			opts.Logger = logger
			if opts.Bg, err = pc.RGB(render.RgbConsoleBg); err != nil {
				return nil, fmt.Errorf("panels[%d]: %w", i, err)
			}
			p = panel.NewConsole(pc.Rect(), ring, opts)
			d.rings = append(d.rings, ring)

		case config.KindStatic:
			color, err := pc.RGB(render.RgbPanelRed)
			if err != nil {
				return nil, fmt.Errorf("panels[%d]: %w", i, err)
			}
			name := pc.Name
			if name == "" {
				name = fmt.Sprintf("panel%d", i)
			}
			p = panel.NewStaticColor(name, pc.Rect(), color, logger)

		default:
			return nil, fmt.Errorf("panels[%d]: unknown kind %q", i, pc.Kind)
		}

		h := d.comp.Add(p)
		logger.Printf("desktop: %s panel %d at %+v", pc.Kind, h, pc.Rect())
	}
	return d, nil
}
