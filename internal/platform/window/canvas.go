package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// vectorCanvas draws game shapes onto an Ebitengine image, one unit per
// pixel.
type vectorCanvas struct {
	dst    *ebiten.Image
	fg, bg color.Color
}

func newVectorCanvas(dst *ebiten.Image, fg, bg color.Color) *vectorCanvas {
	return &vectorCanvas{dst: dst, fg: fg, bg: bg}
}

func (c *vectorCanvas) ClearRect(x, y, w, h float64) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.bg, false)
}

func (c *vectorCanvas) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.fg, false)
}

func (c *vectorCanvas) FillCircle(cx, cy, r float64) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), c.fg, true)
}
