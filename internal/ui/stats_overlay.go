// internal/ui/stats_overlay.go
package ui

import (
	"fmt"

	"go-sky-sparks/internal/config"
	"go-sky-sparks/internal/sky"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// StatsOverlay prints pool sizes and the frame rate in a corner of the
// window. Shown only with --debug.
type StatsOverlay struct {
	X, Y int
	face font.Face
}

func NewStatsOverlay(x, y int) *StatsOverlay {
	return &StatsOverlay{
		X:    x,
		Y:    y,
		face: basicfont.Face7x13,
	}
}

// Text formats the overlay line.
func (o *StatsOverlay) Text(stats sky.Stats, fps float64, paused bool) string {
	line := fmt.Sprintf("FPS %.1f  particles %d/%d  trails %d  frame %d",
		fps, stats.Particles, stats.Cap, stats.Trails, stats.Frames)
	if paused {
		line += "  PAUSED"
	}
	return line
}

func (o *StatsOverlay) Draw(screen *ebiten.Image, stats sky.Stats, fps float64, paused bool) {
	text.Draw(screen, o.Text(stats, fps, paused), o.face, o.X, o.Y, config.TextLightColor)
}
