package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/retrodesk/core"
)

// GlyphReplacement is drawn for runes that do not occupy exactly one cell
const GlyphReplacement = '?'

// CellBuffer is an in-memory Target backed by a row-major cell array with clip support
// Used as the headless surface and as the reference surface in tests
type CellBuffer struct {
	cells  []Cell
	width  int
	height int
	clip   core.Rect
}

// NewCellBuffer creates a buffer with the specified dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.ResetClip()
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RGBBlack, Bg: RGBBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Size returns buffer dimensions
func (b *CellBuffer) Size() (int, int) {
	return b.width, b.height
}

// SetClip constrains drawing to rect within the buffer bounds
func (b *CellBuffer) SetClip(rect core.Rect) {
	b.clip = rect.Intersect(b.bounds())
}

// ResetClip restores drawing to the whole buffer
func (b *CellBuffer) ResetClip() {
	b.clip = b.bounds()
}

// Clip returns the active clip region
func (b *CellBuffer) Clip() core.Rect {
	return b.clip
}

// FillRect paints the clipped part of rect with spaces on color
func (b *CellBuffer) FillRect(rect core.Rect, color RGB) {
	r := rect.Intersect(b.clip)
	for y := r.Y; y < r.Bottom(); y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x := r.X; x < r.Right(); x++ {
			row[x] = Cell{Rune: ' ', Fg: color, Bg: color}
		}
	}
}

// BlitGlyph writes rune and foreground while preserving existing background
func (b *CellBuffer) BlitGlyph(ch rune, x, y int, fg RGB) {
	if !b.clip.Contains(core.Point{X: x, Y: y}) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = GlyphFor(ch)
	dst.Fg = fg
}

// Cell returns the cell at x, y, zero value when out of bounds
func (b *CellBuffer) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Snapshot returns a copy of all cells, row-major
func (b *CellBuffer) Snapshot() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Text returns the runes of row y with trailing spaces trimmed
func (b *CellBuffer) Text(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y*b.width : (y+1)*b.width] {
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (b *CellBuffer) bounds() core.Rect {
	return core.Rect{W: b.width, H: b.height}
}

// GlyphFor maps a rune to the glyph drawn in a single fixed-size cell
func GlyphFor(ch rune) rune {
	if runewidth.RuneWidth(ch) != 1 {
		return GlyphReplacement
	}
	return ch
}
