// Package sky animates the falling sparks: a pool of particles, each shedding
// shrinking trails, stepped and painted once per frame.
package sky

import (
	"go-sky-sparks/internal/config"
	"go-sky-sparks/internal/event"
	"go-sky-sparks/internal/utils"
	"go-sky-sparks/pkg/render"
)

// world is the state shared read-only by every particle and trail of a field.
// Only Field.Resize writes to it, between frames.
type world struct {
	opts          config.Options
	rng           utils.Source
	width, height float64
}

// Stats is a snapshot of the pool sizes.
type Stats struct {
	Frames    uint64
	Particles int
	Cap       int
	Trails    int
}

// Field is the animation loop state: the particle pool and the surface size.
// It is not safe for concurrent use; drive it from a single goroutine.
type Field struct {
	world     *world
	palette   render.Palette
	particles []Particle
	frames    uint64
}

// NewField builds an empty field for a surface of width x height. The particle
// cap is resolved once, here, from opts and the initial height.
func NewField(opts config.Options, rng utils.Source, width, height int, palette render.Palette) *Field {
	w := &world{
		opts:   opts,
		rng:    rng,
		width:  float64(width),
		height: float64(height),
	}
	return &Field{
		world:     w,
		palette:   palette,
		particles: make([]Particle, 0, opts.ParticleCap(height)),
	}
}

// Resize updates the surface size. Nothing else is reset; particles pick up
// the new bounds on their next step.
func (f *Field) Resize(width, height int) {
	f.world.width = float64(width)
	f.world.height = float64(height)
}

// OnEvent applies event.Resized notifications.
func (f *Field) OnEvent(e event.Event) {
	if size, ok := e.Data.(event.Size); ok && e.Type == event.Resized {
		f.Resize(size.Width, size.Height)
	}
}

func (f *Field) Size() (width, height int) {
	return int(f.world.width), int(f.world.height)
}

func (f *Field) Palette() render.Palette {
	return f.palette
}

// Frame advances the animation by one tick and paints it: clear, spawn at
// most one particle, step every particle, fill all circles at once.
func (f *Field) Frame(ctx render.Context) {
	ctx.FillRect(0, 0, f.world.width, f.world.height, f.palette.Background)
	ctx.BeginPath()

	if len(f.particles) < cap(f.particles) && f.world.rng.Float64() < f.world.opts.Particles.SpawnChance {
		f.particles = append(f.particles, newParticle(f.world))
		f.particles[len(f.particles)-1].reset()
	}

	for i := range f.particles {
		f.particles[i].step(ctx)
	}

	ctx.Fill(f.palette.Spark)
	f.frames++
}

// Paint repaints the current state without advancing it or drawing any
// randomness.
func (f *Field) Paint(ctx render.Context, palette render.Palette) {
	ctx.FillRect(0, 0, f.world.width, f.world.height, palette.Background)
	ctx.BeginPath()

	for i := range f.particles {
		p := &f.particles[i]
		for j := range p.trails {
			// a trail that was just reset has not been drawn in its new life yet
			if p.trails[j].Tick > 0 {
				p.trails[j].draw(ctx)
			}
		}
		p.draw(ctx)
	}

	ctx.Fill(palette.Spark)
}

// Particles returns the live particles in spawn order. The slice is shared
// with the field and must not be modified.
func (f *Field) Particles() []Particle {
	return f.particles
}

func (f *Field) Stats() Stats {
	stats := Stats{
		Frames:    f.frames,
		Particles: len(f.particles),
		Cap:       cap(f.particles),
	}
	for i := range f.particles {
		stats.Trails += len(f.particles[i].trails)
	}
	return stats
}
