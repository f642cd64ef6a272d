package render

import "github.com/lixenwraith/retrodesk/core"

// Target is the drawing capability consumed by panels and the compositor
// All drawing is constrained to the active clip region
type Target interface {
	// Size returns the surface dimensions in cells
	Size() (width, height int)

	// FillRect paints rect with an opaque background color
	FillRect(rect core.Rect, color RGB)

	// BlitGlyph draws one glyph cell at x, y keeping the existing background
	BlitGlyph(r rune, x, y int, fg RGB)

	// SetClip constrains subsequent drawing to rect intersected with the surface
	SetClip(rect core.Rect)

	// ResetClip removes the clip so the full surface is drawable
	ResetClip()
}

// Presenter publishes a drawn frame to the display
type Presenter interface {
	Present() error
}
