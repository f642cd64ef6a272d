package engine

import "github.com/lixenwraith/retrodesk/panel"

// Handle identifies a panel by its z-order position
// Index 0 is the bottom-most panel, the highest index the top-most
type Handle int

// NoPanel is the handle used when no panel applies
const NoPanel Handle = -1

// Valid reports whether h refers to a panel in a list of n panels
func (h Handle) Valid(n int) bool {
	return h >= 0 && int(h) < n
}

// Panel returns the panel at h, nil when h is not valid
func (c *Compositor) Panel(h Handle) panel.Panel {
	if !h.Valid(len(c.panels)) {
		return nil
	}
	return c.panels[h]
}
