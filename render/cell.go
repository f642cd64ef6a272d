package render

// Cell is a single glyph cell of a drawing surface
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}
