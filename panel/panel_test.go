package panel

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/event"
	"github.com/lixenwraith/retrodesk/render"
)

func TestContextFocusOnce(t *testing.T) {
	calls := 0
	ctx := NewContext(false, func() { calls++ })

	ctx.Focus()
	ctx.Focus()
	assert.True(t, ctx.Focused())
	assert.Equal(t, 1, calls)
}

func TestContextExpiredFocusIgnored(t *testing.T) {
	calls := 0
	ctx := NewContext(false, func() { calls++ })
	ctx.Expire()
	ctx.Focus()

	assert.False(t, ctx.Focused())
	assert.Equal(t, 0, calls)
}

func TestStaticColorRenderFills(t *testing.T) {
	rect := core.Rect{X: 1, Y: 1, W: 2, H: 2}
	p := NewStaticColor("red", rect, render.RgbPanelRed, nil)
	buf := render.NewCellBuffer(4, 4)

	p.Render(buf, rect)

	assert.Equal(t, render.RgbPanelRed, buf.Cell(1, 1).Bg)
	assert.Equal(t, render.RgbPanelRed, buf.Cell(2, 2).Bg)
	assert.Equal(t, render.RGBBlack, buf.Cell(3, 3).Bg)
	assert.Equal(t, rect, p.Bounds())
}

func TestStaticColorFocusesOnPress(t *testing.T) {
	var out bytes.Buffer
	p := NewStaticColor("green", core.Rect{W: 5, H: 5}, render.RgbPanelGreen, log.New(&out, "", 0))

	ctx := NewContext(false, nil)
	assert.NoError(t, p.HandleEvent(ctx, event.Raw{Type: event.PointerMotion, X: 1, Y: 2}))
	assert.False(t, ctx.Focused())

	assert.NoError(t, p.HandleEvent(ctx, event.Raw{Type: event.PointerDown, X: 1, Y: 2}))
	assert.True(t, ctx.Focused())
	assert.Contains(t, out.String(), "panel green: pointer_down at (1,2)")
}
