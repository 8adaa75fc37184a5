package main

import (
	"image/color"

	"go-sky-sparks/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// raylibContext collects the circles of a path and draws them with raylib's
// own filled circle primitive on Fill.
type raylibContext struct {
	circles []render.Circle
}

func (c *raylibContext) FillRect(x, y, w, h float64, clr color.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), colorToRL(clr))
}

func (c *raylibContext) BeginPath() {
	c.circles = c.circles[:0]
}

func (c *raylibContext) MoveTo(x, y float64) {}

func (c *raylibContext) Arc(x, y, radius, startAngle, endAngle float64) {
	c.circles = append(c.circles, render.Circle{X: x, Y: y, Radius: radius})
}

func (c *raylibContext) Fill(clr color.Color) {
	col := colorToRL(clr)
	for _, circle := range c.circles {
		rl.DrawCircleV(rl.NewVector2(float32(circle.X), float32(circle.Y)), float32(circle.Radius), col)
	}
}

// Helper to convert color.Color to rl.Color
func colorToRL(c color.Color) rl.Color {
	rgba := render.ToRGBA(c)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
