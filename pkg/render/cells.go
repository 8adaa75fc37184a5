package render

import (
	"image/color"
	"math"
)

// Cells implements Context on a coarse grid of square dots, for character
// terminals. Two dots stack into one terminal cell, so a grid of cols x rows
// cells holds cols x rows*2 dots.
type Cells struct {
	Cols, Rows int
	DotSize    float64

	dots    []color.RGBA
	pending []Circle
}

func NewCells(cols, rows int, dotSize float64) *Cells {
	c := &Cells{DotSize: dotSize}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the grid for a terminal of cols x rows cells.
func (c *Cells) Resize(cols, rows int) {
	c.Cols = max(cols, 0)
	c.Rows = max(rows, 0)
	c.dots = make([]color.RGBA, c.Cols*c.Rows*2)
}

// PixelSize is the size of the surface the grid stands for.
func (c *Cells) PixelSize() (w, h int) {
	return int(float64(c.Cols) * c.DotSize), int(float64(c.Rows*2) * c.DotSize)
}

// Cell returns the colours of the upper and lower dot of a terminal cell.
func (c *Cells) Cell(col, row int) (top, bottom color.RGBA) {
	return c.dot(col, row*2), c.dot(col, row*2+1)
}

func (c *Cells) dot(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows*2 {
		return color.RGBA{}
	}
	return c.dots[y*c.Cols+x]
}

func (c *Cells) set(x, y int, clr color.RGBA) {
	if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows*2 {
		return
	}
	c.dots[y*c.Cols+x] = clr
}

func (c *Cells) FillRect(x, y, w, h float64, clr color.Color) {
	rgba := ToRGBA(clr)
	x0, y0 := c.toDot(x), c.toDot(y)
	x1, y1 := int(math.Ceil((x+w)/c.DotSize)), int(math.Ceil((y+h)/c.DotSize))
	for dy := max(y0, 0); dy < min(y1, c.Rows*2); dy++ {
		for dx := max(x0, 0); dx < min(x1, c.Cols); dx++ {
			c.dots[dy*c.Cols+dx] = rgba
		}
	}
}

func (c *Cells) BeginPath() {
	c.pending = c.pending[:0]
}

func (c *Cells) MoveTo(x, y float64) {}

// Arc records a full circle. Partial arcs are not needed by the field.
func (c *Cells) Arc(x, y, radius, startAngle, endAngle float64) {
	c.pending = append(c.pending, Circle{X: x, Y: y, Radius: radius})
}

func (c *Cells) Fill(clr color.Color) {
	rgba := ToRGBA(clr)
	for _, circle := range c.pending {
		if circle.Radius <= 0 {
			continue
		}
		// Даже самая маленькая искра занимает одну точку.
		c.set(c.toDot(circle.X), c.toDot(circle.Y), rgba)

		r2 := circle.Radius * circle.Radius
		x0, x1 := c.toDot(circle.X-circle.Radius), c.toDot(circle.X+circle.Radius)
		y0, y1 := c.toDot(circle.Y-circle.Radius), c.toDot(circle.Y+circle.Radius)
		for dy := y0; dy <= y1; dy++ {
			cy := (float64(dy)+0.5)*c.DotSize - circle.Y
			for dx := x0; dx <= x1; dx++ {
				cx := (float64(dx)+0.5)*c.DotSize - circle.X
				if cx*cx+cy*cy <= r2 {
					c.set(dx, dy, rgba)
				}
			}
		}
	}
}

func (c *Cells) toDot(v float64) int {
	return int(math.Floor(v / c.DotSize))
}
