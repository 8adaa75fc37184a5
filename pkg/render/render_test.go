package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = color.RGBA{A: 255}
	blue  = color.RGBA{R: 135, G: 206, B: 235, A: 255}
)

func TestCellsFillRectClears(t *testing.T) {
	cells := NewCells(4, 2, 6)

	w, h := cells.PixelSize()
	require.Equal(t, 24, w)
	require.Equal(t, 24, h)

	cells.FillRect(0, 0, float64(w), float64(h), black)
	for row := 0; row < 2; row++ {
		for col := 0; col < 4; col++ {
			top, bottom := cells.Cell(col, row)
			assert.Equal(t, black, top)
			assert.Equal(t, black, bottom)
		}
	}
}

func TestCellsFillCircle(t *testing.T) {
	cells := NewCells(10, 5, 6)
	cells.FillRect(0, 0, 60, 60, black)

	cells.BeginPath()
	cells.MoveTo(30, 30)
	cells.Arc(30, 30, 7, 0, 6.28)
	cells.Fill(blue)

	// dot (5,5) contains the centre, its upper half lives in cell row 2
	_, bottom := cells.Cell(5, 2)
	assert.Equal(t, blue, bottom)

	// dot (4,4) has its centre at (27,27), within the radius
	top, _ := cells.Cell(4, 2)
	assert.Equal(t, blue, top)

	// far corner stays untouched
	top, _ = cells.Cell(0, 0)
	assert.Equal(t, black, top)
}

func TestCellsTinyCircleStillVisible(t *testing.T) {
	cells := NewCells(10, 5, 6)

	cells.BeginPath()
	cells.Arc(13, 13, 0.5, 0, 6.28)
	cells.Fill(blue)

	top, _ := cells.Cell(2, 1)
	assert.Equal(t, blue, top)
}

func TestCellsClipsOutsideCircles(t *testing.T) {
	cells := NewCells(3, 1, 6)

	cells.BeginPath()
	cells.Arc(-20, -20, 10, 0, 6.28)
	cells.Arc(100, 100, 10, 0, 6.28)
	require.NotPanics(t, func() { cells.Fill(blue) })
}

func TestRecorderKeepsLastFilledPath(t *testing.T) {
	var rec Recorder

	rec.FillRect(0, 0, 10, 10, black)
	rec.BeginPath()
	rec.MoveTo(1, 2)
	rec.Arc(1, 2, 3, 0, 6.28)
	rec.Fill(blue)

	rec.BeginPath()
	rec.MoveTo(4, 5)
	rec.Arc(4, 5, 6, 0, 6.28)

	assert.Equal(t, 1, rec.Rects)
	assert.Equal(t, 2, rec.Arcs)
	assert.Equal(t, 1, rec.Fills)
	assert.Equal(t, []Circle{{X: 1, Y: 2, Radius: 3}}, rec.Filled)
	assert.Equal(t, []Circle{{X: 4, Y: 5, Radius: 6}}, rec.Pending)
}

func TestPaletteDimmed(t *testing.T) {
	p := Palette{Background: black, Spark: blue}.Dimmed()
	assert.Equal(t, black, p.Background)
	assert.Equal(t, color.RGBA{R: 67, G: 103, B: 117, A: 255}, p.Spark)
}

func TestToRGBA(t *testing.T) {
	assert.Equal(t, blue, ToRGBA(blue))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, ToRGBA(color.White))
}
