package render

import "image/color"

// Context is the drawing surface the sky field paints onto. It mirrors a
// canvas 2D context: circles are accumulated into one path between BeginPath
// and Fill.
type Context interface {
	FillRect(x, y, w, h float64, clr color.Color)
	BeginPath()
	MoveTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Fill(clr color.Color)
}
