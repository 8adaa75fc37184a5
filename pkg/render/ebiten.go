package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Circles per batch, keeps the triangulated path below the uint16 index limit.
const maxSubpathsPerBatch = 256

// EbitenContext implements Context on top of an *ebiten.Image. All circles
// between BeginPath and Fill are filled with a single colour.
type EbitenContext struct {
	target   *ebiten.Image
	fillImg  *ebiten.Image
	paths    []vector.Path
	subpaths int
	fillVs   []ebiten.Vertex
	fillIs   []uint16
}

func NewEbitenContext() *EbitenContext {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &EbitenContext{
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 1024),
		fillIs:  make([]uint16, 0, 1024),
	}
}

// SetTarget selects the image drawn onto. Called once per frame with the
// screen handed out by ebiten.
func (c *EbitenContext) SetTarget(target *ebiten.Image) {
	c.target = target
}

func (c *EbitenContext) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.target, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *EbitenContext) BeginPath() {
	c.paths = c.paths[:0]
	c.subpaths = 0
}

func (c *EbitenContext) MoveTo(x, y float64) {
	if len(c.paths) == 0 || c.subpaths >= maxSubpathsPerBatch {
		c.paths = append(c.paths, vector.Path{})
		c.subpaths = 0
	}
	c.subpaths++
	c.last().MoveTo(float32(x), float32(y))
}

func (c *EbitenContext) Arc(x, y, radius, startAngle, endAngle float64) {
	if len(c.paths) == 0 {
		c.paths = append(c.paths, vector.Path{})
	}
	c.last().Arc(float32(x), float32(y), float32(radius), float32(startAngle), float32(endAngle), vector.Clockwise)
}

func (c *EbitenContext) Fill(clr color.Color) {
	rgba := ToRGBA(clr)
	for i := range c.paths {
		c.fillVs, c.fillIs = c.paths[i].AppendVerticesAndIndicesForFilling(c.fillVs[:0], c.fillIs[:0])
		for j := range c.fillVs {
			c.fillVs[j].ColorR = float32(rgba.R) / 255
			c.fillVs[j].ColorG = float32(rgba.G) / 255
			c.fillVs[j].ColorB = float32(rgba.B) / 255
			c.fillVs[j].ColorA = float32(rgba.A) / 255
		}
		c.target.DrawTriangles(c.fillVs, c.fillIs, c.fillImg, &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}
}

func (c *EbitenContext) last() *vector.Path {
	return &c.paths[len(c.paths)-1]
}
