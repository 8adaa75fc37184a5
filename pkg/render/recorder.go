package render

import "image/color"

// Circle is one arc recorded by a Recorder.
type Circle struct {
	X, Y, Radius float64
}

// Recorder is a headless Context. It keeps the circles of the last filled
// path and counts every call, which is enough to check and benchmark a frame
// without a window.
type Recorder struct {
	Rects   int
	Moves   int
	Arcs    int
	Fills   int
	Pending []Circle
	Filled  []Circle
	Color   color.Color
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Rects++
}

func (r *Recorder) BeginPath() {
	r.Pending = r.Pending[:0]
}

func (r *Recorder) MoveTo(x, y float64) {
	r.Moves++
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.Arcs++
	r.Pending = append(r.Pending, Circle{X: x, Y: y, Radius: radius})
}

func (r *Recorder) Fill(clr color.Color) {
	r.Fills++
	r.Color = clr
	r.Filled = append(r.Filled[:0], r.Pending...)
}
