package core

import "math"

// Canvas projects a fixed logical playfield onto a Screen of terminal cells.
// Game code draws in playfield units; the canvas scales every primitive to
// whatever size the screen currently has, so a terminal resize never touches
// the simulation.
type Canvas struct {
	screen        *Screen
	logicalWidth  float64
	logicalHeight float64
}

// NewCanvas creates a canvas drawing into screen with the given logical size.
func NewCanvas(screen *Screen, logicalWidth, logicalHeight float64) *Canvas {
	return &Canvas{
		screen:        screen,
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Width returns the logical playfield width.
func (c *Canvas) Width() float64 {
	return c.logicalWidth
}

// Height returns the logical playfield height.
func (c *Canvas) Height() float64 {
	return c.logicalHeight
}

// Clear blanks the underlying screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

func (c *Canvas) scale() (float64, float64) {
	if c.logicalWidth <= 0 || c.logicalHeight <= 0 {
		return 0, 0
	}
	return float64(c.screen.Width()) / c.logicalWidth, float64(c.screen.Height()) / c.logicalHeight
}

// span converts a logical [start, start+size) interval to a cell interval.
// Anything with a positive size covers at least one cell.
func span(start, size, scale float64) (int, int) {
	from := int(math.Round(start * scale))
	to := int(math.Round((start + size) * scale))
	if to <= from && size > 0 {
		to = from + 1
	}
	return from, to
}

// FillRect fills a logical rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, fill rune, col Color) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}
	x0, x1 := span(x, w, sx)
	y0, y1 := span(y, h, sy)
	c.screen.FillCells(x0, y0, x1-x0, y1-y0, fill, col)
}

// FillArc fills a logical circle. Cells are painted when their center lies
// inside the circle; a circle smaller than one cell still marks the cell
// under its center.
func (c *Canvas) FillArc(cx, cy, r float64, fill rune, col Color) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 || r <= 0 {
		return
	}

	x0, x1 := span(cx-r, 2*r, sx)
	y0, y1 := span(cy-r, 2*r, sy)
	painted := false
	for row := y0; row < y1; row++ {
		for col2 := x0; col2 < x1; col2++ {
			lx := (float64(col2) + 0.5) / sx
			ly := (float64(row) + 0.5) / sy
			dx, dy := lx-cx, ly-cy
			if dx*dx+dy*dy <= r*r {
				c.screen.SetCell(col2, row, fill, col)
				painted = true
			}
		}
	}
	if !painted {
		c.screen.SetCell(int(cx*sx), int(cy*sy), fill, col)
	}
}

// DrawSprite fills a logical rectangle with body and places face on the
// right-most cell of the middle row. It is the terminal stand-in for
// drawing an image.
func (c *Canvas) DrawSprite(x, y, w, h float64, body, face rune, col Color) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}
	x0, x1 := span(x, w, sx)
	y0, y1 := span(y, h, sy)
	c.screen.FillCells(x0, y0, x1-x0, y1-y0, body, col)
	c.screen.SetCell(x1-1, y0+(y1-y0-1)/2, face, col)
}

// DrawText writes text starting at a logical position.
func (c *Canvas) DrawText(x, y float64, text string, col Color) {
	sx, sy := c.scale()
	c.screen.DrawText(int(x*sx), int(y*sy), text, col)
}

// DrawTextCentered writes text centered horizontally at a logical height.
func (c *Canvas) DrawTextCentered(y float64, text string, col Color) {
	_, sy := c.scale()
	c.screen.DrawTextCentered(int(y*sy), text, col)
}

// DrawPanel draws a blanked, framed box centered on the screen horizontally
// and on logical height y vertically, with lines centered inside it.
func (c *Canvas) DrawPanel(y float64, lines []string, col Color) {
	_, sy := c.scale()

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (c.screen.Width() - boxW) / 2
	boxY := int(y*sy) - boxH/2

	c.screen.FillCells(boxX, boxY, boxW, boxH, ' ', ColorDefault)
	c.screen.DrawBox(boxX, boxY, boxW, boxH, col)
	for i, l := range lines {
		lx := boxX + (boxW-len([]rune(l)))/2
		c.screen.DrawText(lx, boxY+1+i, l, col)
	}
}
