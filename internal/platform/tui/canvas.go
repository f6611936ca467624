package tui

import (
	"math"

	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/game"
)

// Fill runes for projected shapes.
const (
	RuneRect   = '█'
	RuneCircle = '●'
)

// Projection maps surface units onto a block of terminal cells.
// The surface is shrunk to fit the available cells, never enlarged past its
// nominal cell size, and centered.
type Projection struct {
	OffsetX, OffsetY int     // Top-left cell of the projected surface
	Cols, Rows       int     // Cells covered by the surface
	ScaleX, ScaleY   float64 // Cells per surface unit
}

// NewProjection fits a surface into cols x rows cells of nominal size
// cellW x cellH surface units.
func NewProjection(surf game.Surface, cols, rows int, cellW, cellH float64) Projection {
	var p Projection
	if surf.Width <= 0 || surf.Height <= 0 || cols <= 0 || rows <= 0 || cellW <= 0 || cellH <= 0 {
		return p
	}

	k := math.Min(1, math.Min(
		float64(cols)*cellW/surf.Width,
		float64(rows)*cellH/surf.Height,
	))

	p.Cols = core.Clamp(int(math.Round(surf.Width*k/cellW)), 1, cols)
	p.Rows = core.Clamp(int(math.Round(surf.Height*k/cellH)), 1, rows)
	p.ScaleX = float64(p.Cols) / surf.Width
	p.ScaleY = float64(p.Rows) / surf.Height
	p.OffsetX = (cols - p.Cols) / 2
	p.OffsetY = (rows - p.Rows) / 2
	return p
}

// Empty reports whether the projection covers no cells.
func (p Projection) Empty() bool {
	return p.Cols == 0 || p.Rows == 0
}

// Bounds returns the projected surface in cell coordinates, for pointer
// mapping.
func (p Projection) Bounds() game.Bounds {
	return game.Bounds{
		Left:   float64(p.OffsetX),
		Top:    float64(p.OffsetY),
		Width:  float64(p.Cols),
		Height: float64(p.Rows),
	}
}

// CellCenter returns the center of surface-relative cell (col, row) in
// surface units.
func (p Projection) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / p.ScaleX, (float64(row) + 0.5) / p.ScaleY
}

// CellAt returns the surface-relative cell containing surface point (x, y),
// clamped to the projection.
func (p Projection) CellAt(x, y float64) (int, int) {
	col := core.Clamp(int(math.Floor(x*p.ScaleX)), 0, p.Cols-1)
	row := core.Clamp(int(math.Floor(y*p.ScaleY)), 0, p.Rows-1)
	return col, row
}

// surfaceRect returns the projected surface in surface units.
func (p Projection) surfaceRect() core.Rect {
	return core.NewRect(0, 0, float64(p.Cols)/p.ScaleX, float64(p.Rows)/p.ScaleY)
}

// contains reports whether surface point (x, y) lies on the projection.
func (p Projection) contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x*p.ScaleX < float64(p.Cols) && y*p.ScaleY < float64(p.Rows)
}

// span returns the half-open range of surface-relative cells touched by
// [lo, hi) at the given scale, clipped to [0, limit).
func span(lo, hi, scale float64, limit int) (int, int) {
	a := core.Clamp(int(math.Floor(lo*scale)), 0, limit)
	b := core.Clamp(int(math.Ceil(hi*scale)), 0, limit)
	return a, b
}

// CellCanvas draws game shapes onto a Screen through a Projection.
// A cell is filled when its center lies inside the shape; a shape too small
// to cover any cell center still fills the cell under its own center.
type CellCanvas struct {
	screen *core.Screen
	proj   Projection
	color  core.Color
}

// NewCellCanvas creates a canvas that fills cells with the given color role.
func NewCellCanvas(screen *core.Screen, proj Projection, color core.Color) *CellCanvas {
	return &CellCanvas{screen: screen, proj: proj, color: color}
}

// ClearRect blanks every cell whose center lies in the region.
func (c *CellCanvas) ClearRect(x, y, w, h float64) {
	c.fill(x, y, w, h, core.Cell{Rune: ' ', Color: core.ColorDefault}, false)
}

// FillRect fills a rectangle with block characters.
func (c *CellCanvas) FillRect(x, y, w, h float64) {
	c.fill(x, y, w, h, core.Cell{Rune: RuneRect, Color: c.color}, true)
}

// FillCircle fills a circle with dot characters.
func (c *CellCanvas) FillCircle(cx, cy, r float64) {
	p := c.proj
	if p.Empty() || !core.Finite(cx) || !core.Finite(cy) {
		return
	}
	cell := core.Cell{Rune: RuneCircle, Color: c.color}

	c0, c1 := span(cx-r, cx+r, p.ScaleX, p.Cols)
	r0, r1 := span(cy-r, cy+r, p.ScaleY, p.Rows)
	hit := false
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			ux, uy := p.CellCenter(col, row)
			if math.Hypot(ux-cx, uy-cy) <= r {
				c.set(col, row, cell)
				hit = true
			}
		}
	}
	if !hit && p.contains(cx, cy) {
		col, row := p.CellAt(cx, cy)
		c.set(col, row, cell)
	}
}

func (c *CellCanvas) fill(x, y, w, h float64, cell core.Cell, fallback bool) {
	p := c.proj
	shape := core.NewRect(x, y, w, h)
	if p.Empty() || w <= 0 || h <= 0 || !shape.Intersects(p.surfaceRect()) {
		return
	}

	c0, c1 := span(x, x+w, p.ScaleX, p.Cols)
	r0, r1 := span(y, y+h, p.ScaleY, p.Rows)
	hit := false
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			ux, uy := p.CellCenter(col, row)
			if ux >= x && ux < x+w && uy >= y && uy < y+h {
				c.set(col, row, cell)
				hit = true
			}
		}
	}
	if mx, my := shape.Center(); !hit && fallback && p.contains(mx, my) {
		col, row := p.CellAt(mx, my)
		c.set(col, row, cell)
	}
}

// set writes a surface-relative cell onto the screen.
func (c *CellCanvas) set(col, row int, cell core.Cell) {
	c.screen.SetCell(c.proj.OffsetX+col, c.proj.OffsetY+row, cell)
}
