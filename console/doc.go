// Package console provides the text model hosted by console panels.
//
// A Ring is a fixed-capacity circular log of Lines. The active line (the newest)
// receives all appends until a new line is started; starting a line on a full ring
// evicts the oldest. Each Line is a growable rune buffer that remembers how many
// leading runes form its non-editable prompt.
//
// Ring and Line are not safe for concurrent use. The compositor loop owns them on a
// single goroutine.
package console
