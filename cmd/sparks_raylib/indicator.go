// cmd/sparks_raylib/indicator.go
package main

import (
	"math"
	"time"

	"go-sky-sparks/internal/event"
	"go-sky-sparks/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// pauseIndicator - кружок в углу, вспыхивает при паузе и продолжении
type pauseIndicator struct {
	X, Y      float32
	Radius    float32
	toggledAt time.Time
}

func newPauseIndicator(x, y, radius float32) *pauseIndicator {
	return &pauseIndicator{X: x, Y: y, Radius: radius}
}

// OnEvent restarts the pulse on Paused and Resumed.
func (i *pauseIndicator) OnEvent(event.Event) {
	i.toggledAt = time.Now()
}

func (i *pauseIndicator) scale(now time.Time) float32 {
	elapsed := now.Sub(i.toggledAt).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

func (i *pauseIndicator) Draw(paused bool, palette render.Palette) {
	if paused {
		palette = palette.Dimmed()
	}
	radius := i.Radius * i.scale(time.Now())

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), radius, colorToRL(palette.Spark))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), radius, rl.White)
}
